package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotrip/internal/models/db_models"
	"ecotrip/internal/testutil"
)

func TestDestinationRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewDestinationRepository(db)
	ctx := context.Background()

	for _, d := range []db_models.Destination{
		{City: "Lyon", Country: "France"},
		{City: "Lisbonne", Country: "Portugal", Description: testutil.StrPtr("Ville aux sept collines")},
		{City: "Nice", Country: "France"},
	} {
		require.NoError(t, repo.Create(ctx, &d))
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Lyon", all[0].City)
	assert.Equal(t, "Nice", all[2].City)

	france, err := repo.List(ctx, "France")
	require.NoError(t, err)
	require.Len(t, france, 2)
	for _, d := range france {
		assert.Equal(t, "France", d.Country)
	}

	none, err := repo.List(ctx, "france")
	require.NoError(t, err)
	assert.Empty(t, none, "country filter is an exact match")
}

func TestDestinationRepository_GetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewDestinationRepository(db)
	ctx := context.Background()

	dest := &db_models.Destination{City: "Lisbonne", Country: "Portugal", Description: testutil.StrPtr("Ville aux sept collines")}
	require.NoError(t, repo.Create(ctx, dest))

	got, err := repo.GetByID(ctx, dest.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Ville aux sept collines", *got.Description)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
