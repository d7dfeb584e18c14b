// Package mcp binds the Proofessor dispatcher to a Model Context Protocol
// server.
//
// Every catalog tool is registered on an official go-sdk server with the
// dispatcher as its handler. A receiving middleware answers calls for tools
// the catalog does not declare with an error-flagged result, so clients see
// a normal tool result instead of a JSON-RPC fault.
package mcp
