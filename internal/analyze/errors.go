package analyze

import "fmt"

// Kind names the pipeline stage an analysis failed in, so callers can
// report which step broke without parsing error strings.
type Kind int

const (
	// KindWorkspace covers temp-directory creation failures.
	KindWorkspace Kind = iota
	// KindClone covers git clone failures, including timeouts.
	KindClone
	// KindStaging covers copying the bundled script into the clone.
	KindStaging
	// KindExecution covers script failures: bad exit, timeout, or an
	// interpreter that is not available on this platform.
	KindExecution
)

// Error is a stage-tagged analysis failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindWorkspace:
		return fmt.Sprintf("workspace setup failed: %v", e.Err)
	case KindClone:
		return fmt.Sprintf("clone failed: %v", e.Err)
	case KindStaging:
		return fmt.Sprintf("script staging failed: %v", e.Err)
	default:
		return fmt.Sprintf("script execution failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }
