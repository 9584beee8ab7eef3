// Package uniuri generates short random strings used to name temporary files
// next to the files they replace.
package uniuri
