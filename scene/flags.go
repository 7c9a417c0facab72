package scene

import "flag"

func (m Mode) String() string {
	return string(m)
}

// Set implements flag.Value.
func (m *Mode) Set(name string) error {
	parsed, err := ParseMode(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// RegisterFlags binds the config fields to command line flags, using the
// current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(&c.Mode, "mode", "camera mode: velocity or keyboard")
	fs.Float64Var(&c.Velocity.X, "vx", c.Velocity.X, "camera velocity X per tick (velocity mode)")
	fs.Float64Var(&c.Velocity.Y, "vy", c.Velocity.Y, "camera velocity Y per tick (velocity mode)")
	fs.Float64Var(&c.PanStep, "pan-step", c.PanStep, "camera pan per tick per held key (keyboard mode)")
	fs.Float64Var(&c.RotateStep, "rotate-step", c.RotateStep, "camera turn in radians per tick per held key (keyboard mode)")
	fs.Float64Var(&c.PlayerScale.X, "player-width", c.PlayerScale.X, "player sprite width")
	fs.Float64Var(&c.PlayerScale.Y, "player-height", c.PlayerScale.Y, "player sprite height")
}
