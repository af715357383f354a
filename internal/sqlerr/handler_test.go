package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JSwartzmiller/gym/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_PgCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23514",
		Message:        `new row for relation "exercises" violates check constraint "exercises_name_check"`,
		TableName:      "exercises",
		ConstraintName: "exercises_name_check",
	}

	err := HandleError(fmt.Errorf("insert exercise: %w", pgErr))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "EXERCISE_INVALID", httpErr.Code)
	assert.Equal(t, "One or more exercise values do not meet required conditions", httpErr.Message)
}

func TestHandleError_PgNotNullUsesColumn(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		TableName:  "sets",
		ColumnName: "reps",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "SET_REQUIRED", httpErr.Code)
	assert.Equal(t, "The set Reps is required", httpErr.Message)
}

func TestHandleError_TableFromWrapper(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514"}

	err := HandleError(WithTable("sets", fmt.Errorf("insert set: %w", pgErr)))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "SET_INVALID", httpErr.Code)
}

func TestHandleError_UnknownErrorKeepsDescription(t *testing.T) {
	err := HandleError(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Contains(t, httpErr.Message, "connection refused")
}

func TestHandleError_NoRows(t *testing.T) {
	err := HandleError(WithTable("workouts", sql.ErrNoRows))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Workout not found", httpErr.Message)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewBadRequestError("Validation failed", true, nil, nil)
	assert.Same(t, original, HandleError(original))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, UndefinedTable, MapCode("42P01"))
	assert.Equal(t, Other, MapCode("XX000"))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "label", extractColumnForUniqueViolation("unique_workouts_label"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("exercises_name_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pk"))
}

func TestErrCode(t *testing.T) {
	sqlErr := ConvertPgError(&pgconn.PgError{Code: "23503"})
	assert.Equal(t, ForeignKeyViolation, ErrCode(fmt.Errorf("wrapped: %w", sqlErr)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestWithTableNil(t *testing.T) {
	assert.NoError(t, WithTable("workouts", nil))
}
