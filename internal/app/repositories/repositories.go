package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/db"
)

// DBTX is the query surface shared by pgxpool.Pool and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StudentStore persists students. Lookups report absence as a nil student, not an error.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// GradeStore persists grades of every subject
type GradeStore interface {
	Create(ctx context.Context, grade *models.Grade) (int64, error)
	GetByID(ctx context.Context, subject models.Subject, id int64) (*models.Grade, error)
	GetByStudentID(ctx context.Context, subject models.Subject, studentID int64) ([]models.Grade, error)
	Delete(ctx context.Context, subject models.Subject, id int64) (bool, error)
	DeleteByStudentID(ctx context.Context, studentID int64) (int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Students StudentStore
	Grades   GradeStore
}

// NewRepositories initializes all repositories on the given connection
func NewRepositories(conn DBTX) *Repositories {
	return &Repositories{
		Students: NewStudentRepository(conn),
		Grades:   NewGradeRepository(conn),
	}
}

// TxFn is a unit of work bound to one set of transactional repositories
type TxFn func(ctx context.Context, repos *Repositories) error

// Transactor runs units of work
type Transactor interface {
	WithinTransaction(ctx context.Context, fn TxFn) error
}

// PgTransactor runs each unit of work in its own PostgreSQL transaction
type PgTransactor struct {
	beginner db.TxBeginner
}

// NewPgTransactor creates a transactor over a pool
func NewPgTransactor(beginner db.TxBeginner) *PgTransactor {
	return &PgTransactor{beginner: beginner}
}

// WithinTransaction implements Transactor
func (t *PgTransactor) WithinTransaction(ctx context.Context, fn TxFn) error {
	return db.RunInTx(ctx, t.beginner, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, NewRepositories(tx))
	})
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
