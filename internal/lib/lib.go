// Package lib groups supporting code that does not fit the request layers:
// background jobs (Asynq), email delivery (Resend) and small utilities.
package lib
