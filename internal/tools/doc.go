// Package tools holds the request records and response templates of the
// Proofessor tools.
//
// Formatting is pure: the same request always renders the same text. Optional
// sections are written only when their field is non-empty.
package tools
