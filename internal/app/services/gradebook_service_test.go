package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/repositories"
	"github.com/yigit/gradebook/internal/app/repositories/memstore"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

// seededService returns a service over a store holding Eric Roby with one grade per subject
func seededService(t *testing.T) (GradebookService, int64) {
	t.Helper()
	store := memstore.New()
	svc := NewGradebookService(store, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.CreateStudent(ctx, "Eric", "Roby", "eric.roby@luv2code_school.com"))
	students, err := svc.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	id := students[0].ID

	for _, subject := range models.Subjects {
		_, err := svc.CreateGrade(ctx, id, string(subject), 100)
		require.NoError(t, err)
	}
	return svc, id
}

func TestCreateStudentGrowsListByOne(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	before, err := svc.ListStudents(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CreateStudent(ctx, "Chad", "Darby", "chad.darby@luv2code_school.com"))

	after, err := svc.ListStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, "Chad", after[len(after)-1].Firstname)
}

func TestCreateStudentValidation(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	err := svc.CreateStudent(ctx, " ", "Darby", "chad@school.com")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.CreateStudent(ctx, "Eric", "Roby", "eric.roby@luv2code_school.com")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUnknownStudentIsNotFound(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	for _, id := range []int64{0, -1, 999} {
		_, err := svc.GetGradebook(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

		err = svc.DeleteStudent(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	}
}

func TestGetGradebookComputesAverages(t *testing.T) {
	svc, id := seededService(t)
	ctx := context.Background()

	for _, value := range []float64{90, 85} {
		_, err := svc.CreateGrade(ctx, id, "math", value)
		require.NoError(t, err)
	}

	gb, err := svc.GetGradebook(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Eric Roby", gb.FullName)
	assert.Len(t, gb.StudentGrades.MathGradeResults, 3)
	assert.Equal(t, 3, gb.StudentGrades.MathGradeCount)
	assert.Equal(t, 91.67, gb.StudentGrades.MathGradeAverage)
	assert.Equal(t, 100.0, gb.StudentGrades.ScienceGradeAverage)
	assert.Equal(t, 100.0, gb.StudentGrades.HistoryGradeAverage)
}

func TestGradebookOfStudentWithoutGradesAveragesZero(t *testing.T) {
	svc := NewGradebookService(memstore.New(), zerolog.Nop())
	ctx := context.Background()
	require.NoError(t, svc.CreateStudent(ctx, "Chad", "Darby", "chad.darby@luv2code_school.com"))

	gb, err := svc.GetGradebook(ctx, 1)
	require.NoError(t, err)
	for _, subject := range models.Subjects {
		assert.NotNil(t, gb.StudentGrades.Results(subject))
		assert.Empty(t, gb.StudentGrades.Results(subject))
	}
	assert.Zero(t, gb.StudentGrades.MathGradeAverage)
	assert.Zero(t, gb.StudentGrades.ScienceGradeAverage)
	assert.Zero(t, gb.StudentGrades.HistoryGradeAverage)
}

func TestCreateGradeReturnsRecomputedGradebook(t *testing.T) {
	svc, id := seededService(t)

	gb, err := svc.CreateGrade(context.Background(), id, "math", 100)
	require.NoError(t, err)
	assert.Len(t, gb.StudentGrades.MathGradeResults, 2)
	assert.Len(t, gb.StudentGrades.ScienceGradeResults, 1)
	assert.Len(t, gb.StudentGrades.HistoryGradeResults, 1)
}

func TestCreateGradeSubjectIsCaseInsensitive(t *testing.T) {
	svc, id := seededService(t)

	gb, err := svc.CreateGrade(context.Background(), id, " History ", 60)
	require.NoError(t, err)
	assert.Len(t, gb.StudentGrades.HistoryGradeResults, 2)
	assert.Equal(t, 80.0, gb.StudentGrades.HistoryGradeAverage)
}

func TestCreateGradeUnknownSubjectIsNotFoundForAnyStudent(t *testing.T) {
	svc, id := seededService(t)

	for _, studentID := range []int64{id, 0, 999} {
		_, err := svc.CreateGrade(context.Background(), studentID, "literature", 90)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSubject)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	}
}

func TestCreateGradeUnknownStudent(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.CreateGrade(context.Background(), 999, "math", 90)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestCreateGradeRejectsOutOfRangeValues(t *testing.T) {
	svc, id := seededService(t)
	ctx := context.Background()

	for _, value := range []float64{-1, 100.5, math.NaN(), math.Inf(1)} {
		_, err := svc.CreateGrade(ctx, id, "math", value)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, value)
	}

	gradebook, err := svc.GetGradebook(ctx, id)
	require.NoError(t, err)
	assert.Len(t, gradebook.StudentGrades.MathGradeResults, 1)
}

func TestDeleteGradeOnlyAffectsItsSubject(t *testing.T) {
	svc, id := seededService(t)
	ctx := context.Background()

	before, err := svc.GetGradebook(ctx, id)
	require.NoError(t, err)
	mathGrade := before.StudentGrades.MathGradeResults[0]

	gb, err := svc.DeleteGrade(ctx, mathGrade.ID, "math")
	require.NoError(t, err)
	assert.Empty(t, gb.StudentGrades.MathGradeResults)
	assert.Equal(t, before.StudentGrades.ScienceGradeResults, gb.StudentGrades.ScienceGradeResults)
	assert.Equal(t, before.StudentGrades.HistoryGradeResults, gb.StudentGrades.HistoryGradeResults)
}

func TestDeleteGradeWrongSubjectOrMissing(t *testing.T) {
	svc, id := seededService(t)
	ctx := context.Background()

	gb, err := svc.GetGradebook(ctx, id)
	require.NoError(t, err)
	mathID := gb.StudentGrades.MathGradeResults[0].ID

	_, err = svc.DeleteGrade(ctx, mathID, "science")
	assert.ErrorIs(t, err, apperrors.ErrGradeNotFound)

	_, err = svc.DeleteGrade(ctx, mathID, "art")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSubject)

	_, err = svc.DeleteGrade(ctx, 999, "math")
	assert.ErrorIs(t, err, apperrors.ErrGradeNotFound)
}

func TestDeleteIsNotFoundOnSecondCall(t *testing.T) {
	svc, id := seededService(t)
	ctx := context.Background()

	gb, err := svc.GetGradebook(ctx, id)
	require.NoError(t, err)
	historyID := gb.StudentGrades.HistoryGradeResults[0].ID

	_, err = svc.DeleteGrade(ctx, historyID, "history")
	require.NoError(t, err)
	_, err = svc.DeleteGrade(ctx, historyID, "history")
	assert.ErrorIs(t, err, apperrors.ErrGradeNotFound)

	require.NoError(t, svc.DeleteStudent(ctx, id))
	assert.ErrorIs(t, svc.DeleteStudent(ctx, id), apperrors.ErrStudentNotFound)
}

func TestDeleteStudentRemovesAllGrades(t *testing.T) {
	store := memstore.New()
	svc := NewGradebookService(store, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.CreateStudent(ctx, "Eric", "Roby", "eric.roby@luv2code_school.com"))
	gb, err := svc.CreateGrade(ctx, 1, "science", 70)
	require.NoError(t, err)
	scienceID := gb.StudentGrades.ScienceGradeResults[0].ID

	require.NoError(t, svc.DeleteStudent(ctx, 1))

	_, err = svc.GetGradebook(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	_, err = svc.DeleteGrade(ctx, scienceID, "science")
	assert.ErrorIs(t, err, apperrors.ErrGradeNotFound)

	err = store.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		for _, subject := range models.Subjects {
			grades, err := repos.Grades.GetByStudentID(ctx, subject, 1)
			require.NoError(t, err)
			assert.Empty(t, grades)
		}
		return nil
	})
	require.NoError(t, err)
}

type failingTransactor struct{ err error }

func (f failingTransactor) WithinTransaction(context.Context, repositories.TxFn) error {
	return f.err
}

func TestStoreFailuresAreWrapped(t *testing.T) {
	dbErr := errors.New("connection reset")
	svc := NewGradebookService(failingTransactor{err: dbErr}, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.ListStudents(ctx)
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.GetGradebook(ctx, 1)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.CreateGrade(ctx, 1, "math", 50)
	assert.ErrorIs(t, err, dbErr)
}
