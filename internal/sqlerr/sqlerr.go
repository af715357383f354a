// Package sqlerr specifically handles database driver errors.
//
// It normalizes the errors of both store drivers (pgx for PostgreSQL,
// modernc for SQLite) into one Error type and converts them into the
// application's HTTP errors.
package sqlerr
