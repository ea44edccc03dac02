package assets

// SilentSounds is a SoundProvider whose sounds never make noise.
// Used for remote sessions, --mute and tests.
type SilentSounds struct{}

// Load always succeeds with a silent sound.
func (SilentSounds) Load(name string) (Sound, error) {
	return silentSound{}, nil
}

type silentSound struct{}

func (silentSound) Play() {}
