// Package types defines the font preference types shared across fontweak:
// generic families, slots, aliases and the rendering option set, together
// with the two-way string tables used to read and write them.
package types
