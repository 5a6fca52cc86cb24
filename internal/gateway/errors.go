package gateway

import "errors"

// Sentinel errors for gateway operations.
var (
	// ErrNilConfig indicates that a nil configuration was provided.
	ErrNilConfig = errors.New("configuration is required")

	// ErrAlreadyRunning indicates that the gateway is already running
	// when a start operation is attempted.
	ErrAlreadyRunning = errors.New("gateway is already running")
)
