package proofessor

import "github.com/wagiedev/proofessor-mcp/internal/errors"

// Re-export error types from internal package

// ProofessorError is the base interface for all server errors.
type ProofessorError = errors.ProofessorError

// UnknownToolError indicates a call named a tool the catalog does not declare.
type UnknownToolError = errors.UnknownToolError

// InvalidArgumentsError indicates the arguments of a call failed validation.
type InvalidArgumentsError = errors.InvalidArgumentsError

// HandlerFailureError indicates a tool handler failed while building its response.
type HandlerFailureError = errors.HandlerFailureError

// Re-export sentinel errors from internal package.
var (
	// ErrUnknownTool indicates the requested tool is not in the catalog.
	ErrUnknownTool = errors.ErrUnknownTool

	// ErrInvalidArguments indicates the call arguments do not satisfy the tool schema.
	ErrInvalidArguments = errors.ErrInvalidArguments

	// ErrHandlerPanic indicates a tool handler panicked.
	ErrHandlerPanic = errors.ErrHandlerPanic

	// ErrServerClosed indicates the server was used after its transport closed.
	ErrServerClosed = errors.ErrServerClosed
)
