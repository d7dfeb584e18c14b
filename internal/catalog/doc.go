// Package catalog declares the fixed set of tools the Proofessor server exposes.
//
// The catalog is built once and never mutated. Each descriptor carries the
// JSON Schema advertised to clients in tools/list; the dispatcher derives its
// argument validation from the same schema.
package catalog
