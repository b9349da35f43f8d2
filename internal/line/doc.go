// Package line defines the record model produced by the classifier.
//
// A Record is one logical line of a configuration document: its kind, its
// trimmed canonical text, and the nesting depth it renders at. Records are
// plain values; the rewrite passes copy and re-depth them but never carry
// hidden state.
package line
