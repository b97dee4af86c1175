package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/repositories"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/validation"
)

// GradebookService defines the interface for student and grade operations
type GradebookService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	CreateStudent(ctx context.Context, firstname, lastname, email string) error
	DeleteStudent(ctx context.Context, id int64) error
	GetGradebook(ctx context.Context, studentID int64) (*models.Gradebook, error)
	CreateGrade(ctx context.Context, studentID int64, gradeType string, value float64) (*models.Gradebook, error)
	DeleteGrade(ctx context.Context, gradeID int64, gradeType string) (*models.Gradebook, error)
}

// gradebookServiceImpl implements the GradebookService interface
type gradebookServiceImpl struct {
	tx     repositories.Transactor
	logger zerolog.Logger
}

// NewGradebookService creates a new gradebook service instance
func NewGradebookService(tx repositories.Transactor, logger zerolog.Logger) GradebookService {
	return &gradebookServiceImpl{
		tx:     tx,
		logger: logger.With().Str("component", "gradebook_service").Logger(),
	}
}

// ListStudents returns every student without grades
func (s *gradebookServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	var students []*models.Student
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		var err error
		students, err = repos.Students.GetAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// CreateStudent stores a new student with empty grade collections
func (s *gradebookServiceImpl) CreateStudent(ctx context.Context, firstname, lastname, email string) error {
	student := &models.Student{
		Firstname:    strings.TrimSpace(firstname),
		Lastname:     strings.TrimSpace(lastname),
		EmailAddress: strings.TrimSpace(email),
	}
	valid := validation.NewStringValidation(student.Firstname).WithMaxLength(validation.NameMaxLength).Validate() &&
		validation.NewStringValidation(student.Lastname).WithMaxLength(validation.NameMaxLength).Validate() &&
		validation.NewStringValidation(student.EmailAddress).WithMaxLength(validation.EmailMaxLength).Validate()
	if !valid {
		return apperrors.NewValidationError("firstname, lastname and email are required and must fit their column sizes")
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		existing, err := repos.Students.GetByEmail(ctx, student.EmailAddress)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.ErrEmailAlreadyExists
		}
		_, err = repos.Students.Create(ctx, student)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Int64("studentID", student.ID).Msg("Student created")
	return nil
}

// DeleteStudent removes a student together with all of its grades
func (s *gradebookServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	var removedGrades int64
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		student, err := repos.Students.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if student == nil {
			return apperrors.ErrStudentNotFound
		}

		if removedGrades, err = repos.Grades.DeleteByStudentID(ctx, id); err != nil {
			return err
		}

		deleted, err := repos.Students.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return apperrors.ErrStudentNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	s.logger.Info().Int64("studentID", id).Int64("gradesRemoved", removedGrades).Msg("Student deleted")
	return nil
}

// GetGradebook assembles the gradebook view of a student
func (s *gradebookServiceImpl) GetGradebook(ctx context.Context, studentID int64) (*models.Gradebook, error) {
	var gradebook *models.Gradebook
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		var err error
		gradebook, err = loadGradebook(ctx, repos, studentID)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving gradebook: %w", err)
	}
	return gradebook, nil
}

// CreateGrade adds a grade to a student and returns the recomputed gradebook
func (s *gradebookServiceImpl) CreateGrade(ctx context.Context, studentID int64, gradeType string, value float64) (*models.Gradebook, error) {
	subject, err := models.ParseSubject(gradeType)
	if err != nil {
		return nil, apperrors.ErrInvalidSubject
	}
	if !validation.ValidGrade(value) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("grade must be a number between %g and %g", validation.GradeMin, validation.GradeMax))
	}

	var gradebook *models.Gradebook
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		student, err := repos.Students.GetByID(ctx, studentID)
		if err != nil {
			return err
		}
		if student == nil {
			return apperrors.ErrStudentNotFound
		}

		grade := &models.Grade{StudentID: studentID, Subject: subject, Grade: value}
		if _, err := repos.Grades.Create(ctx, grade); err != nil {
			return err
		}

		gradebook, err = loadGradebook(ctx, repos, studentID)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error creating grade: %w", err)
	}

	s.logger.Info().Int64("studentID", studentID).Str("subject", subject.String()).Float64("grade", value).
		Int("subjectGradeCount", len(gradebook.StudentGrades.Results(subject))).
		Msg("Grade created")
	return gradebook, nil
}

// DeleteGrade removes one grade and returns the recomputed gradebook of its owner
func (s *gradebookServiceImpl) DeleteGrade(ctx context.Context, gradeID int64, gradeType string) (*models.Gradebook, error) {
	subject, err := models.ParseSubject(gradeType)
	if err != nil {
		return nil, apperrors.ErrInvalidSubject
	}

	var gradebook *models.Gradebook
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		grade, err := repos.Grades.GetByID(ctx, subject, gradeID)
		if err != nil {
			return err
		}
		if grade == nil {
			return apperrors.ErrGradeNotFound
		}

		deleted, err := repos.Grades.Delete(ctx, subject, gradeID)
		if err != nil {
			return err
		}
		if !deleted {
			return apperrors.ErrGradeNotFound
		}

		gradebook, err = loadGradebook(ctx, repos, grade.StudentID)
		return err
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrGradeNotFound, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error deleting grade: %w", err)
	}

	s.logger.Info().Int64("gradeID", gradeID).Str("subject", subject.String()).
		Int("subjectGradeCount", len(gradebook.StudentGrades.Results(subject))).
		Msg("Grade deleted")
	return gradebook, nil
}

// loadGradebook reads a student and its three grade collections and builds the view
func loadGradebook(ctx context.Context, repos *repositories.Repositories, studentID int64) (*models.Gradebook, error) {
	student, err := repos.Students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	grades := make(map[models.Subject][]models.Grade, len(models.Subjects))
	for _, subject := range models.Subjects {
		results, err := repos.Grades.GetByStudentID(ctx, subject, studentID)
		if err != nil {
			return nil, err
		}
		grades[subject] = results
	}

	return models.NewGradebook(*student, grades), nil
}
