// Package cst defines the lossless parse tree of a settings document.
//
// [Node] is the tree element; rendering a node concatenates Prefix+Text
// over its leaves, so an unmodified tree reproduces the source byte for
// byte. [Eval] turns literal subtrees into Go values and [FromValue] turns
// Go values into subtrees.
package cst
