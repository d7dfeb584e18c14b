// Package errors defines error types for the Proofessor MCP server.
//
// Every failure a tool call can hit is one of the types below. The dispatcher
// converts them into error-flagged tool results, so none of them ever crosses
// the transport. All error types support unwrapping and can be checked with
// errors.Is and errors.As.
package errors
