// Package jsonx provides JSON helpers over response bodies: pretty
// re-serialization, validation pass-through, gjson path queries and JSON
// Schema validation. Failures use the client package's error taxonomy.
package jsonx
