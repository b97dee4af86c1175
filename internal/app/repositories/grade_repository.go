package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/dberrors"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

const gradesTable = "grades"

var gradeColumns = []string{"id", "student_id", "subject", "grade"}

// GradeRepository handles grade database operations for all subjects.
// Every query is scoped by subject, so a math grade id never resolves as a science grade.
type GradeRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db DBTX) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a grade and returns the assigned ID
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) (int64, error) {
	if !grade.Subject.IsValid() {
		return 0, apperrors.ErrInvalidSubject
	}

	sql, args, err := r.sb.Insert(gradesTable).
		Columns("student_id", "subject", "grade").
		Values(grade.StudentID, string(grade.Subject), grade.Grade).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create grade SQL")
		return 0, fmt.Errorf("failed to build create grade query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", grade.StudentID).Str("subject", grade.Subject.String()).Msg("Error executing create grade query")
		return 0, fmt.Errorf("error creating grade: %w", err)
	}

	grade.ID = id
	return id, nil
}

// GetByID retrieves a grade of a subject by ID. It returns nil when no row matches.
func (r *GradeRepository) GetByID(ctx context.Context, subject models.Subject, id int64) (*models.Grade, error) {
	sql, args, err := r.sb.Select(gradeColumns...).
		From(gradesTable).
		Where(squirrel.Eq{"id": id, "subject": string(subject)}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get grade by ID SQL")
		return nil, fmt.Errorf("failed to build get grade query: %w", err)
	}

	var (
		g          models.Grade
		subjectStr string
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(&g.ID, &g.StudentID, &subjectStr, &g.Grade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("gradeID", id).Msg("Error scanning grade row")
		return nil, fmt.Errorf("error getting grade by ID: %w", err)
	}
	g.Subject = models.Subject(subjectStr)

	return &g, nil
}

// GetByStudentID retrieves a student's grades for one subject in insertion order
func (r *GradeRepository) GetByStudentID(ctx context.Context, subject models.Subject, studentID int64) ([]models.Grade, error) {
	sql, args, err := r.sb.Select(gradeColumns...).
		From(gradesTable).
		Where(squirrel.Eq{"student_id": studentID, "subject": string(subject)}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get grades by student SQL")
		return nil, fmt.Errorf("failed to build get grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing get grades by student query")
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	grades := []models.Grade{}
	for rows.Next() {
		var (
			g          models.Grade
			subjectStr string
		)
		if err := rows.Scan(&g.ID, &g.StudentID, &subjectStr, &g.Grade); err != nil {
			logger.Error().Err(err).Msg("Error scanning grade row")
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		g.Subject = models.Subject(subjectStr)
		grades = append(grades, g)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating grade rows")
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}

	return grades, nil
}

// Delete removes a grade of a subject and reports whether a row was deleted
func (r *GradeRepository) Delete(ctx context.Context, subject models.Subject, id int64) (bool, error) {
	sql, args, err := r.sb.Delete(gradesTable).
		Where(squirrel.Eq{"id": id, "subject": string(subject)}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete grade SQL")
		return false, fmt.Errorf("failed to build delete grade query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("gradeID", id).Msg("Error executing delete grade query")
		return false, fmt.Errorf("error deleting grade: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// DeleteByStudentID removes every grade of a student and returns the number of rows deleted
func (r *GradeRepository) DeleteByStudentID(ctx context.Context, studentID int64) (int64, error) {
	sql, args, err := r.sb.Delete(gradesTable).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete grades by student SQL")
		return 0, fmt.Errorf("failed to build delete grades query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing delete grades by student query")
		return 0, fmt.Errorf("error deleting grades: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
