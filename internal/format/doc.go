// Package format renders record sequences back to text and ties the
// classify, rewrite, validate, and render steps together for one input.
package format
