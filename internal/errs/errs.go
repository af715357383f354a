// Package errs defines the error types returned to API clients.
//
// Every failure a handler returns is converted into an HTTPError so clients
// always receive the same JSON shape, with a human-readable `error` field.
package errs
