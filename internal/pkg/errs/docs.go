// Package errs provides the typed errors shared by the domain, the use cases and
// the adapters of meatmanager.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) that callers match with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Error() for the message and Unwrap() returning the sentinel
//
// The HTTP adapter maps the sentinels onto status codes, so new failure modes
// should reuse one of them where possible.
package errs
