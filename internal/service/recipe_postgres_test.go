package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KohanaIshitsuka/recipe-atelier/internal/models"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/service"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/testdb"
)

// Exercises the real Postgres dialect, including the text-backed Lines
// columns. Skipped unless container tests are enabled.
func TestRecipeLifecyclePostgres(t *testing.T) {
	td := testdb.Setup(t)
	defer td.Close()

	svc := service.NewRecipeService(td.DB)
	owner := uuid.New()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, service.RecipeDraft{
		Title:       "Pasta al limone",
		Ingredients: models.Lines{"pasta", "lemon", "butter"},
		Steps:       models.Lines{"boil", "toss"},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Lines{"pasta", "lemon", "butter"}, got.Ingredients)

	require.NoError(t, svc.Like(ctx, uuid.New(), created.ID))
	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", got.Likes)

	require.NoError(t, svc.Delete(ctx, owner, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
