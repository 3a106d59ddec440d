package mines

import "fmt"

// EngineMisuse reports a caller bug: a contract of the engine was violated.
// Game-state edge cases never produce it.
type EngineMisuse struct {
	message string
}

func misuse(format string, args ...any) EngineMisuse {
	return EngineMisuse{fmt.Sprintf(format, args...)}
}

// [EngineMisuse] implements [error]
func (e EngineMisuse) Error() string {
	return "engine misuse: " + e.message
}
