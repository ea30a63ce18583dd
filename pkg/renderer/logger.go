package renderer

import "fmt"

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// SilentLogger implements core.Logger by discarding everything
type SilentLogger struct{}

func (sl *SilentLogger) Printf(format string, args ...interface{}) {}
