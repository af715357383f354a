// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated input from handlers, applies the workout rules and calls the
// store to persist or read data.
package service
