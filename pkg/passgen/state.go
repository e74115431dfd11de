package passgen

// State owns the current generator config and the last generated password.
// Every setter that actually changes the config regenerates the password
// immediately, so the password is always consistent with the config on
// display. State is meant to be owned by a single UI context and does no
// locking of its own.
type State struct {
	cfg      Config
	password string
}

// NewState clamps cfg.Length into [MinLength, MaxLength] and generates the
// initial password.
func NewState(cfg Config) *State {
	cfg.Length = ClampLength(cfg.Length)

	s := &State{cfg: cfg}
	s.Regenerate()

	return s
}

// Config returns the current generator config.
func (s *State) Config() Config { return s.cfg }

// Password returns the last generated password.
func (s *State) Password() string { return s.password }

// Regenerate replaces the password with a fresh sample from the current pool.
func (s *State) Regenerate() {
	s.password = Generate(s.cfg)
}

// SetLength clamps n into [MinLength, MaxLength] and, if the clamped value
// differs from the current length, regenerates.
func (s *State) SetLength(n int) {
	n = ClampLength(n)
	if n == s.cfg.Length {
		return
	}

	s.cfg.Length = n
	s.Regenerate()
}

// SetDigits includes or excludes the digit set, regenerating on change.
func (s *State) SetDigits(on bool) {
	if on == s.cfg.Digits {
		return
	}

	s.cfg.Digits = on
	s.Regenerate()
}

// SetSymbols includes or excludes the symbol set, regenerating on change.
func (s *State) SetSymbols(on bool) {
	if on == s.cfg.Symbols {
		return
	}

	s.cfg.Symbols = on
	s.Regenerate()
}

// ToggleDigits flips the digit set and regenerates.
func (s *State) ToggleDigits() { s.SetDigits(!s.cfg.Digits) }

// ToggleSymbols flips the symbol set and regenerates.
func (s *State) ToggleSymbols() { s.SetSymbols(!s.cfg.Symbols) }
