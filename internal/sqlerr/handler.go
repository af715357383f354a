package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/JSwartzmiller/gym/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	uniqueKeyRe        = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	sqliteConstraintRe = regexp.MustCompile(`(?:NOT NULL|UNIQUE) constraint failed: (\w+)\.(\w+)`)
)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw PostgreSQL error into an Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ConvertSQLiteError converts a modernc SQLite error into an Error.
//
// SQLite reports table and column only for NOT NULL and UNIQUE failures,
// inside the message text.
func ConvertSQLiteError(src *sqlite.Error) *Error {
	sqlErr := &Error{
		Code:         mapSQLiteCode(src.Code()),
		Severity:     SeverityError,
		DatabaseCode: fmt.Sprintf("SQLITE_%d", src.Code()),
		Message:      src.Error(),
		driverErr:    src,
	}

	if m := sqliteConstraintRe.FindStringSubmatch(src.Error()); m != nil {
		sqlErr.TableName = m[1]
		sqlErr.ColumnName = m[2]
	}

	return sqlErr
}

func mapSQLiteCode(code int) Code {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return NotNullViolation
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ForeignKeyViolation
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return UniqueViolation
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return CheckViolation
	}

	switch code & 0xff {
	case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_NOTADB:
		return ConnectionFailure
	}
	return Other
}

// Normalize returns the *Error for a driver error, or nil when err does not
// come from a supported driver. The table recorded with WithTable fills in
// what the driver leaves out.
func Normalize(err error) *Error {
	var sqlErr *Error

	var pgErr *pgconn.PgError
	var liteErr *sqlite.Error
	var connectErr *pgconn.ConnectError
	switch {
	case errors.As(err, &sqlErr):
	case errors.As(err, &pgErr):
		sqlErr = ConvertPgError(pgErr)
	case errors.As(err, &liteErr):
		sqlErr = ConvertSQLiteError(liteErr)
	case errors.As(err, &connectErr):
		sqlErr = &Error{
			Code:      ConnectionFailure,
			Severity:  SeverityFatal,
			Message:   connectErr.Error(),
			driverErr: connectErr,
		}
	default:
		return nil
	}

	if sqlErr.TableName == "" {
		sqlErr.TableName = tableOf(err)
	}
	return sqlErr
}

// generateErrorCode creates application error codes from DB errors:
//
//	<DOMAIN>_<ACTION>    e.g. exercises + CheckViolation => EXERCISE_INVALID
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	case ConnectionFailure:
		return "DATABASE_UNAVAILABLE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage phrases a constraint violation for API clients.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		message := fmt.Sprintf("A %s with this identifier already exists", entityName)
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			message = strings.ReplaceAll(message, "identifier", humanizeText(column))
		}
		return message

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s %s is required", entityName, fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s %s value does not meet required conditions", entityName, fieldName)
		}
		return fmt.Sprintf("One or more %s values do not meet required conditions", entityName)

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name, preferring a "<entity>_id" column,
// then the singularized table name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return strings.ToLower(humanizeText(entity))
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return strings.ToLower(humanizeText(entity))
	}

	return "record"
}

// humanizeText converts snake_case into Title Case.
//
//	"first_name" -> "First Name"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint
// named "unique_<table>_<column>" or "<table>_<column>_(key|ukey)".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyRe.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an application-level error.
//
//   - *errs.HTTPError: returned unchanged
//   - constraint violations: 500 with a friendly message and a <DOMAIN>_<ACTION> code
//   - other driver and connectivity errors: 500 carrying the underlying description
//   - ErrNoRows: 404
//   - anything else: 500 carrying err's description
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		if table := tableOf(err); table != "" {
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", humanizeText(getEntityName(table, ""))), true, nil)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	if sqlErr := Normalize(err); sqlErr != nil {
		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)

		switch sqlErr.Code {
		case ForeignKeyViolation, UniqueViolation, NotNullViolation, CheckViolation:
			storeErr := errs.NewStoreError(formatUserFriendlyMessage(sqlErr), errorCode)
			storeErr.Override = true
			return storeErr
		default:
			return errs.NewStoreError(err.Error(), errorCode)
		}
	}

	return errs.NewInternalServerError(err.Error())
}
