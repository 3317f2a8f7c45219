// Package value holds the typed value cells and string converters that sit
// at the bottom of the Argos parsing pipeline: every option and positional
// eventually resolves to one of these.
package value
