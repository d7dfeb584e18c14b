package errors

import (
	"errors"
	"fmt"
)

// ProofessorError is the base interface for all server errors.
type ProofessorError interface {
	error
	IsProofessorError() bool
}

// Compile-time verification that all error types implement ProofessorError.
var (
	_ ProofessorError = (*UnknownToolError)(nil)
	_ ProofessorError = (*InvalidArgumentsError)(nil)
	_ ProofessorError = (*HandlerFailureError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrUnknownTool indicates the requested tool is not in the catalog.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidArguments indicates the call arguments do not satisfy the tool schema.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrHandlerPanic indicates a tool handler panicked while formatting its response.
	ErrHandlerPanic = errors.New("handler panic")

	// ErrServerClosed indicates the server was used after its transport closed.
	ErrServerClosed = errors.New("server closed")
)

// UnknownToolError indicates a call named a tool the catalog does not declare.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return "Unknown tool: " + e.Name
}

// Is reports whether target is ErrUnknownTool.
func (e *UnknownToolError) Is(target error) bool {
	return target == ErrUnknownTool
}

// IsProofessorError implements ProofessorError.
func (e *UnknownToolError) IsProofessorError() bool { return true }

// InvalidArgumentsError indicates the arguments of a call failed validation.
type InvalidArgumentsError struct {
	Tool string
	Err  error
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Tool, e.Err)
}

func (e *InvalidArgumentsError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidArguments.
func (e *InvalidArgumentsError) Is(target error) bool {
	return target == ErrInvalidArguments
}

// IsProofessorError implements ProofessorError.
func (e *InvalidArgumentsError) IsProofessorError() bool { return true }

// HandlerFailureError indicates a tool handler failed while building its response.
type HandlerFailureError struct {
	Tool string
	Err  error
}

func (e *HandlerFailureError) Error() string {
	return fmt.Sprintf("tool %s failed: %v", e.Tool, e.Err)
}

func (e *HandlerFailureError) Unwrap() error {
	return e.Err
}

// IsProofessorError implements ProofessorError.
func (e *HandlerFailureError) IsProofessorError() bool { return true }

// NewHandlerPanic wraps a recovered panic value as a HandlerFailureError.
func NewHandlerPanic(tool string, recovered any) *HandlerFailureError {
	if err, ok := recovered.(error); ok {
		return &HandlerFailureError{Tool: tool, Err: fmt.Errorf("%w: %w", ErrHandlerPanic, err)}
	}

	return &HandlerFailureError{Tool: tool, Err: fmt.Errorf("%w: %v", ErrHandlerPanic, recovered)}
}
