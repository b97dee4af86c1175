package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/repositories"
)

// Default fixture student
const (
	DefaultFirstname = "Eric"
	DefaultLastname  = "Roby"
	DefaultEmail     = "eric.roby@luv2code_school.com"
	DefaultGrade     = 100.0
)

// CreateDefaultData creates the fixture student with one grade per subject.
// Nothing is written when a student with the fixture email already exists.
func CreateDefaultData(ctx context.Context, tx repositories.Transactor, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (fixture student)...")

	created := false
	err := tx.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		existing, err := repos.Students.GetByEmail(ctx, DefaultEmail)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}

		student := &models.Student{
			Firstname:    DefaultFirstname,
			Lastname:     DefaultLastname,
			EmailAddress: DefaultEmail,
		}
		studentID, err := repos.Students.Create(ctx, student)
		if err != nil {
			return err
		}

		for _, subject := range models.Subjects {
			grade := &models.Grade{StudentID: studentID, Subject: subject, Grade: DefaultGrade}
			if _, err := repos.Grades.Create(ctx, grade); err != nil {
				return fmt.Errorf("failed to seed %s grade: %w", subject, err)
			}
		}
		created = true
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default data")
		return fmt.Errorf("failed to create default data: %w", err)
	}

	if created {
		lgr.Info().Str("email", DefaultEmail).Msg("Default student created")
	} else {
		lgr.Debug().Str("email", DefaultEmail).Msg("Default student already present")
	}
	return nil
}
