// Package language maps host-reported language names onto the scanner's
// language identifiers and holds the baseline job for each identifier.
//
// Classification looks only at which languages are present, never at how
// many bytes each one has. Unknown names are dropped; if nothing supported
// remains the result is the single Fallback identifier, so callers always
// get at least one language to scan.
package language
