// Package driver orchestrates formatting over files and directories: path
// collection, parallel execution, write-back, and the canonical-result disk
// cache. The pure per-file work lives in internal/format; this package owns
// everything that touches the filesystem.
package driver
