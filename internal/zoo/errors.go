package zoo

import "errors"

// Player-facing failures. Every operation rejected with one of these
// leaves the zoo completely unchanged.
var (
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrPolicyViolation   = errors.New("policy violation")

	// ErrRunOver guards day advancement after a terminal outcome.
	ErrRunOver = errors.New("run is over")
)
