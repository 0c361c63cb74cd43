// Package token provides tokenization support for settings documents.
//
// [Tokenize] is a function for tokenizing bytes. Every token carries the
// verbatim whitespace and comments preceding it as its Prefix, so the
// token stream reproduces the input exactly.
package token
