// Package errcode defines the process exit codes shared by the parser, the
// dispatcher and the command-line entrypoint.
package errcode

// Codes follow the BSD sysexits convention.
const (
	OK         = 0
	Usage      = 64
	DataErr    = 65
	NoInput    = 66
	Software   = 70
	CantCreate = 73
	Config     = 78
)

// Name returns a short label for a known exit code.
func Name(code int) string {
	switch code {
	case OK:
		return "OK"
	case Usage:
		return "USAGE"
	case DataErr:
		return "DATAERR"
	case NoInput:
		return "NOINPUT"
	case Software:
		return "SOFTWARE"
	case CantCreate:
		return "CANTCREAT"
	case Config:
		return "CONFIG"
	default:
		return "UNKNOWN"
	}
}
