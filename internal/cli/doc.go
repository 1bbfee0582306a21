// Package cli is responsible for parsing command-line arguments, validating
// process flags, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's internal configuration and
// hands the remaining arguments to the argument parser untouched.
package cli
