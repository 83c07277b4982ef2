/*
Package errors implements custom error interfaces for the framework.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Errors are registered with
a unique code that is reported over the ABCI interface, while the full error
message (including the stack trace) stays on the server for debugging.
*/
package errors
