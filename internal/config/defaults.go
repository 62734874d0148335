package config

const (
	// DefaultColorMode is the default color mode
	DefaultColorMode = ColorAuto
	// DefaultRecoverPanics leaves panics inside checks unrecovered
	DefaultRecoverPanics = false
	// DefaultEnvFile is the default dotenv file read by LoadEnv
	DefaultEnvFile = ".env"
)

const (
	// EnvColor selects the color mode (auto, always, never)
	EnvColor = "CHECKGROUP_COLOR"
	// EnvRecover enables per-check panic recovery when set to a true value
	EnvRecover = "CHECKGROUP_RECOVER"
)
