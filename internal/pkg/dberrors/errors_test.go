package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConstraintErrors(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "students_email_address_key"})
	assert.True(t, IsDuplicateConstraintError(dup, "students_email_address_key"))
	assert.True(t, IsDuplicateConstraintError(dup, ""))
	assert.False(t, IsDuplicateConstraintError(dup, "other_key"))
	assert.False(t, IsForeignKeyViolation(dup))

	fk := &pgconn.PgError{Code: "23503"}
	assert.True(t, IsForeignKeyViolation(fk))
}

func TestIsDatabaseError(t *testing.T) {
	assert.True(t, IsDatabaseError(fmt.Errorf("query: %w", &pgconn.PgError{Code: "40001"})))
	assert.False(t, IsDatabaseError(errors.New("plain failure")))
	assert.False(t, IsDatabaseError(nil))
}
