package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/repositories"
	"github.com/yigit/gradebook/internal/app/repositories/memstore"
)

func TestCreateDefaultDataIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	require.NoError(t, CreateDefaultData(ctx, store, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, store, zerolog.Nop()))

	err := store.WithinTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		students, err := repos.Students.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, "Eric Roby", students[0].FullName())

		for _, subject := range models.Subjects {
			grades, err := repos.Grades.GetByStudentID(ctx, subject, students[0].ID)
			require.NoError(t, err)
			require.Len(t, grades, 1, subject)
			assert.Equal(t, DefaultGrade, grades[0].Grade)
		}
		return nil
	})
	require.NoError(t, err)
}
