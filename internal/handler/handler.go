// Package handler is the HTTP layer that sits behind the router.
//
// Handlers bind and validate input with the validation package, call the
// service layer and write JSON responses. Errors are returned to the global
// error handler rather than written here.
package handler
