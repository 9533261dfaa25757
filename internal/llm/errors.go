package llm

import "fmt"

// OracleError wraps a failed, unreachable, or timed-out completion call.
// These are retryable from the caller's perspective; the system never
// retries internally because an immediate retry against a costly,
// non-deterministic oracle amplifies load without fixing systematic
// formatting drift.
type OracleError struct {
	Cause error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle call failed: %v", e.Cause)
}

func (e *OracleError) Unwrap() error {
	return e.Cause
}
