package cli

import "checkgroup/internal/config"

// Flags holds command-line flags
type Flags struct {
	Color   string
	Recover bool
	EnvFile string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Color:   f.Color,
		Recover: f.Recover,
		EnvFile: f.EnvFile,
	}
}
