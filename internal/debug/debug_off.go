//go:build !debug

// Package debug provides trace logging that is compiled out unless the
// "debug" build tag is set.
package debug

func Printf(msg string, args ...any) {}

const On = false
