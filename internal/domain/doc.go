// Package domain contains the core domain model for Rolodex.
//
// Every field type is an immutable value object: its constructor validates the
// raw text and returns a *ParseError carrying the field's constraint message,
// so a constructed value always satisfies its IsValid* predicate. The domain
// does not depend on YAML parsing, cobra, or the filesystem.
package domain
