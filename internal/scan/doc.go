// Package scan classifies the raw lines of a configuration file into
// depth-annotated records.
//
// Classification is strictly sequential: the depth of every comment,
// key-value, and bare content line depends on the section headers seen
// before it, tracked by a section stack local to one Scan call. The only
// fatal condition is a section header with unbalanced bracket counts; it is
// reported through the Reporter and aborts the scan with no records.
package scan
