package core

// Logger is the logging interface used across the renderer and its front ends
type Logger interface {
	Printf(format string, args ...interface{})
}
