package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

func TestGradeRepositoryCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	mock.ExpectQuery("INSERT INTO grades").
		WithArgs(int64(1), "math", 100.0).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	grade := &models.Grade{StudentID: 1, Subject: models.SubjectMath, Grade: 100}
	id, err := repo.Create(context.Background(), grade)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, int64(11), grade.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryCreateRejectsUnknownSubject(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	_, err := repo.Create(context.Background(), &models.Grade{StudentID: 1, Subject: "art", Grade: 90})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSubject)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryCreateMissingStudent(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	mock.ExpectQuery("INSERT INTO grades").
		WithArgs(int64(42), "science", 70.0).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "grades_student_id_fkey"})

	_, err := repo.Create(context.Background(), &models.Grade{StudentID: 42, Subject: models.SubjectScience, Grade: 70})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryGetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	mock.ExpectQuery("FROM grades WHERE").
		WithArgs(int64(5), "history").
		WillReturnRows(pgxmock.NewRows(gradeColumns).AddRow(int64(5), int64(1), "history", 88.5))

	grade, err := repo.GetByID(context.Background(), models.SubjectHistory, 5)
	require.NoError(t, err)
	require.NotNil(t, grade)
	assert.Equal(t, models.SubjectHistory, grade.Subject)
	assert.Equal(t, int64(1), grade.StudentID)
	assert.Equal(t, 88.5, grade.Grade)
}

func TestGradeRepositoryGetByIDMissingIsNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	mock.ExpectQuery("FROM grades WHERE").
		WithArgs(int64(404), "math").
		WillReturnError(pgx.ErrNoRows)

	grade, err := repo.GetByID(context.Background(), models.SubjectMath, 404)
	assert.NoError(t, err)
	assert.Nil(t, grade)
}

func TestGradeRepositoryGetByStudentID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	mock.ExpectQuery("FROM grades WHERE (.+) ORDER BY id ASC").
		WithArgs(int64(1), "math").
		WillReturnRows(pgxmock.NewRows(gradeColumns).
			AddRow(int64(1), int64(1), "math", 100.0).
			AddRow(int64(4), int64(1), "math", 80.0))

	grades, err := repo.GetByStudentID(context.Background(), models.SubjectMath, 1)
	require.NoError(t, err)
	require.Len(t, grades, 2)
	assert.Equal(t, int64(4), grades[1].ID)
	assert.Equal(t, 90.0, models.Average(grades))
}

func TestGradeRepositoryGetByStudentIDEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	mock.ExpectQuery("FROM grades WHERE").
		WithArgs(int64(1), "science").
		WillReturnRows(pgxmock.NewRows(gradeColumns))

	grades, err := repo.GetByStudentID(context.Background(), models.SubjectScience, 1)
	require.NoError(t, err)
	assert.NotNil(t, grades)
	assert.Empty(t, grades)
}

func TestGradeRepositoryDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	mock.ExpectExec("DELETE FROM grades WHERE").
		WithArgs(int64(1), "math").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), models.SubjectMath, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryDeleteByStudentID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	mock.ExpectExec("DELETE FROM grades WHERE student_id").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := repo.DeleteByStudentID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgTransactorKeepsNotFoundWhenRollbackFails(t *testing.T) {
	mock := newMockPool(t)
	tr := NewPgTransactor(mock)

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection lost"))

	err := tr.WithinTransaction(context.Background(), func(ctx context.Context, repos *Repositories) error {
		return apperrors.ErrStudentNotFound
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgTransactorBindsRepositoriesToTransaction(t *testing.T) {
	mock := newMockPool(t)
	tr := NewPgTransactor(mock)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM grades").WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM students").WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	err := tr.WithinTransaction(context.Background(), func(ctx context.Context, repos *Repositories) error {
		if _, err := repos.Grades.DeleteByStudentID(ctx, 1); err != nil {
			return err
		}
		_, err := repos.Students.Delete(ctx, 1)
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
