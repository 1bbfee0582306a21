package cli

import "strings"

// Environment variables that override the built-in flag defaults. An
// explicit flag still wins.
const (
	EnvModel     = "STANGRID_MODEL"
	EnvLogLevel  = "STANGRID_LOG_LEVEL"
	EnvLogFormat = "STANGRID_LOG_FORMAT"
)

type flagDefaults struct {
	model     string
	logLevel  string
	logFormat string
}

// envDefaults reads flag defaults from environ, given in os.Environ form.
func envDefaults(environ []string) flagDefaults {
	d := flagDefaults{logLevel: "warn", logFormat: "text"}

	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 || pair[1] == "" {
			continue
		}
		switch pair[0] {
		case EnvModel:
			d.model = pair[1]
		case EnvLogLevel:
			d.logLevel = pair[1]
		case EnvLogFormat:
			d.logFormat = pair[1]
		}
	}
	return d
}
