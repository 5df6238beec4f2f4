// Package normalisers provides implementations of the Normaliser interface
// for each artefact format. Each normaliser knows how to turn one format
// into raw (level, domain, descriptor) records.
//
// Normalisers are registered with the Registry at startup.
package normalisers
