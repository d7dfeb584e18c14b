// Package dispatch routes tool calls to their formatters.
//
// Dispatcher.Call is the dispatch boundary: unknown tools, invalid arguments,
// handler errors and handler panics all come back as a tool result with
// IsError set and a single text block, never as a Go error or a panic.
package dispatch
