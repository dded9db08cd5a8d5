// Package filesystem provides the filesystem abstraction fontweak reads and
// writes font configuration through.
//
// Production code uses NewOS; tests use NewAferoFS over an afero.MemMapFs so
// they never touch the real fonts.conf.
package filesystem
