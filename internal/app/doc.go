// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the single-invocation lifecycle: parse the
// argument tokens, resolve the routine, open the output sinks and dispatch.
// It is decoupled from any specific entrypoint like a CLI.
package app
