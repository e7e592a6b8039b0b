// Package shape holds the runtime helpers shared by the generated record
// types: Java-compatible hashing, null-aware equality, defensive copies of
// collection fields, and the debug printer.
//
// Hash values match the ones the service's reference SDK computes for the
// same content, so records can be compared across implementations in logs.
package shape
