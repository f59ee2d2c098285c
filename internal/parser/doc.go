// Package parser turns raw command arguments into executable commands.
//
// Arguments are written as prefix/value pairs, e.g.
//
//	n/Alice Tan p/98765432 e/alice@example.com a/Blk 30 Geylang St 29
//
// Tokenize splits such text into an ArgumentMultimap. The Parse* functions
// validate individual field values, and the per-command parsers combine both
// into a usecase.Command.
package parser
