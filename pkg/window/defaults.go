package window

import "sync/atomic"

// Defaults holds the process-wide window sizes used when a render does not
// set them explicitly.
type Defaults struct {
	Window      int `json:"window" toml:"window"`
	OuterWindow int `json:"outer_window" toml:"outer_window"`
	Left        int `json:"left" toml:"left"`
	Right       int `json:"right" toml:"right"`
	Decade      int `json:"decade" toml:"decade"`
	DecadeLeft  int `json:"decade_left" toml:"decade_left"`
	DecadeRight int `json:"decade_right" toml:"decade_right"`
}

// StandardDefaults returns the built-in defaults: an inner window of 4, an
// outer window of 1 on each side, and no decade windows. Left and Right are
// zero and therefore follow OuterWindow; DecadeLeft and DecadeRight follow
// Decade the same way.
func StandardDefaults() Defaults {
	return Defaults{
		Window:      4,
		OuterWindow: 1,
	}
}

// Validate rejects negative sizes.
func (d Defaults) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{KeyWindow, d.Window},
		{KeyOuterWindow, d.OuterWindow},
		{KeyLeft, d.Left},
		{KeyRight, d.Right},
		{KeyDecade, d.Decade},
		{KeyDecadeLeft, d.DecadeLeft},
		{KeyDecadeRight, d.DecadeRight},
	} {
		if f.value < 0 {
			return invalidf("default "+f.name, f.value, "must be non-negative")
		}
	}
	return nil
}

var current atomic.Pointer[Defaults]

func init() {
	d := StandardDefaults()
	current.Store(&d)
}

// CurrentDefaults returns the process-wide defaults.
func CurrentDefaults() Defaults {
	return *current.Load()
}

// SetDefaults validates d and installs it as the process-wide defaults.
// Configs built before the call are unaffected.
func SetDefaults(d Defaults) error {
	if err := d.Validate(); err != nil {
		return err
	}
	current.Store(&d)
	return nil
}

// ResetDefaults restores StandardDefaults.
func ResetDefaults() {
	d := StandardDefaults()
	current.Store(&d)
}
