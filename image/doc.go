// Package image classifies and unwraps VM program images.
//
// A program image arrives either as raw bytecode or wrapped in an IFF
// resource archive carrying the bytecode plus auxiliary resources. The
// first 12 bytes decide which:
//
//	bytes 0-3 "Glul"                  raw bytecode image
//	bytes 0-3 "FORM", bytes 8-11 "IFRS"  archive-wrapped image
//
// Anything else is a fatal classification error; there is no silent
// default. For archives, ExtractProgram walks the container's resource
// index to the executable chunk and returns its payload.
package image
