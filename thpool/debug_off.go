//go:build !debug

package thpool

// debugLog is a no-op unless built with -tags debug.
func debugLog(string, ...interface{}) {}
