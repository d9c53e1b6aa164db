// Package matrix turns detected languages and operator overrides into the
// job matrix a CI system fans out over.
//
// Build is pure apart from notify events: the same inputs always produce
// the same Plan. Overrides marked ignore remove a language outright, and
// no emitted Entry can carry the ignore flag.
package matrix
