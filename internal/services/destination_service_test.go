package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecotrip/internal/models/db_models"
	"ecotrip/internal/models/request_models"
	"ecotrip/internal/testutil"
	"ecotrip/pkg/utils"
)

func TestDestinationService_CreateAndList(t *testing.T) {
	dests := newFakeDestinationRepo()
	svc := NewDestinationService(dests, newFakeActivityRepo(dests), zap.NewNop())
	ctx := context.Background()

	lisbon, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		City: testutil.StrPtr("Lisbonne"), Country: testutil.StrPtr("Portugal"), Description: testutil.StrPtr("Ville aux sept collines"),
	})
	require.NoError(t, err)
	assert.NotZero(t, lisbon.ID)
	_, err = svc.CreateDestination(ctx, request_models.CreateDestinationRequest{City: testutil.StrPtr("Lyon"), Country: testutil.StrPtr("France")})
	require.NoError(t, err)

	all, err := svc.ListDestinations(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	portugal, err := svc.ListDestinations(ctx, "Portugal")
	require.NoError(t, err)
	require.Len(t, portugal, 1)
	assert.Equal(t, lisbon, portugal[0])

	empty, err := svc.ListDestinations(ctx, "Spain")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestDestinationService_GetDestination(t *testing.T) {
	dests := newFakeDestinationRepo()
	svc := NewDestinationService(dests, newFakeActivityRepo(dests), zap.NewNop())

	_, err := svc.GetDestination(context.Background(), 1)
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)

	dests.err = errors.New("db down")
	_, err = svc.GetDestination(context.Background(), 1)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestDestinationService_ListDestinationActivities(t *testing.T) {
	dests := newFakeDestinationRepo()
	activities := newFakeActivityRepo(dests)
	svc := NewDestinationService(dests, activities, zap.NewNop())
	ctx := context.Background()

	lyon := &db_models.Destination{City: "Lyon", Country: "France"}
	require.NoError(t, dests.Create(ctx, lyon))
	require.NoError(t, activities.Create(ctx, &db_models.Activity{Name: "Bouchon", Type: "repas", PriceEstimated: testutil.FloatPtr(25), DestinationID: &lyon.ID}))

	list, err := svc.ListDestinationActivities(ctx, lyon.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bouchon", list[0].Name)

	_, err = svc.ListDestinationActivities(ctx, 42)
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestActivityService(t *testing.T) {
	dests := newFakeDestinationRepo()
	svc := NewActivityService(newFakeActivityRepo(dests), zap.NewNop())
	ctx := context.Background()

	lyon := &db_models.Destination{City: "Lyon", Country: "France"}
	require.NoError(t, dests.Create(ctx, lyon))

	created, err := svc.CreateActivity(ctx, request_models.ActivityRequest{
		Name: testutil.StrPtr("Vélo'v"), Type: testutil.StrPtr("transport"), PriceEstimated: testutil.FloatPtr(0), DestinationID: &lyon.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.PriceEstimated)
	assert.Equal(t, 0.0, *created.PriceEstimated)

	got, err := svc.GetActivity(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetActivity(ctx, 77)
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)

	_, err = svc.CreateActivity(ctx, request_models.ActivityRequest{
		Name: testutil.StrPtr("Fantôme"), Type: testutil.StrPtr("loisir"), PriceEstimated: testutil.FloatPtr(1), DestinationID: testutil.UintPtr(42),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDestinationReference)
}
