// Package audio plays the game's one-shot sound effects through beep.
package audio

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-flappy/internal/assets"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	speakerOnce sync.Once
	speakerErr  error
	mixer       = &beep.Mixer{}
)

// initSpeaker opens the audio device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
		if speakerErr == nil {
			speaker.Play(mixer)
		}
	})
	return speakerErr
}

// Provider is an assets.SoundProvider that decodes WAV files and plays them
// through the shared speaker mixer at a fixed volume.
type Provider struct {
	res     *assets.Resolver
	volume  float64
	enabled bool
	logger  *log.Logger

	mu     sync.Mutex
	sounds map[string]*Sound
}

// Open creates a provider and opens the audio device. If the device is not
// available the provider still decodes sounds but never plays them.
func Open(res *assets.Resolver, volume float64, logger *log.Logger) *Provider {
	enabled := true
	if err := initSpeaker(); err != nil {
		logger.Warn("audio device unavailable, sounds disabled", "error", err)
		enabled = false
	}
	return newProvider(res, volume, logger, enabled)
}

func newProvider(res *assets.Resolver, volume float64, logger *log.Logger, enabled bool) *Provider {
	return &Provider{
		res:     res,
		volume:  volume,
		enabled: enabled,
		logger:  logger,
		sounds:  make(map[string]*Sound),
	}
}

// Load decodes the named WAV file into memory.
func (p *Provider) Load(name string) (assets.Sound, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.sounds[name]; ok {
		return s, nil
	}

	data, origin, err := p.res.Open(assets.KindSounds, name)
	if err != nil {
		return nil, err
	}
	buf, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", name, err)
	}

	s := &Sound{name: name, buf: buf, volume: p.volume, enabled: p.enabled}
	p.sounds[name] = s
	p.logger.Debug("sound loaded", "name", name, "origin", origin, "duration", sampleRate.D(buf.Len()))
	return s, nil
}

// Close stops everything that is still playing.
func (p *Provider) Close() {
	if !p.enabled {
		return
	}
	speaker.Lock()
	mixer.Clear()
	speaker.Unlock()
}

// decode reads a WAV file into a buffer at the speaker sample rate.
func decode(data []byte) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Sound is a decoded one-shot sound effect.
type Sound struct {
	name    string
	buf     *beep.Buffer
	volume  float64
	enabled bool
}

// Play starts the sound and returns immediately. Overlapping plays mix.
func (s *Sound) Play() {
	if !s.enabled {
		return
	}
	speaker.Lock()
	mixer.Add(s.streamer())
	speaker.Unlock()
}

// Duration returns the length of the sound.
func (s *Sound) Duration() time.Duration {
	return sampleRate.D(s.buf.Len())
}

func (s *Sound) streamer() beep.Streamer {
	gain, silent := volumeToGain(s.volume)
	return &effects.Volume{
		Streamer: s.buf.Streamer(0, s.buf.Len()),
		Base:     2,
		Volume:   gain,
		Silent:   silent,
	}
}

// volumeToGain converts a linear volume in [0, 1] to a base-2 exponent for
// effects.Volume. Zero volume is reported as silent.
func volumeToGain(volume float64) (float64, bool) {
	if volume <= 0 {
		return 0, true
	}
	if volume > 1 {
		volume = 1
	}
	return math.Log2(volume), false
}
