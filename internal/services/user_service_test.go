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

func newUserServiceForTest() (UserServiceInterface, *fakeUserRepo, *fakeDestinationRepo) {
	dests := newFakeDestinationRepo()
	users := newFakeUserRepo(dests)
	return NewUserService(users, dests, zap.NewNop()), users, dests
}

func TestUserService_CreateUser(t *testing.T) {
	svc, _, _ := newUserServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, request_models.CreateUserRequest{
		Nom: testutil.StrPtr("Dupont"), Prenom: testutil.StrPtr("Marie"), Email: testutil.StrPtr("marie@example.com"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Nil(t, created.Adresse)

	_, err = svc.CreateUser(ctx, request_models.CreateUserRequest{
		Nom: testutil.StrPtr("Autre"), Prenom: testutil.StrPtr("Marie"), Email: testutil.StrPtr("marie@example.com"),
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestUserService_CreateUser_StoreFailure(t *testing.T) {
	svc, users, _ := newUserServiceForTest()
	users.err = errors.New("connection reset")

	_, err := svc.CreateUser(context.Background(), request_models.CreateUserRequest{Nom: testutil.StrPtr("a"), Prenom: testutil.StrPtr("b"), Email: testutil.StrPtr("c@d.fr")})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestUserService_UpdateUser_IsPartial(t *testing.T) {
	svc, _, _ := newUserServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, request_models.CreateUserRequest{
		Nom: testutil.StrPtr("Dupont"), Prenom: testutil.StrPtr("Marie"), Email: testutil.StrPtr("marie@example.com"), Adresse: testutil.StrPtr("1 rue A"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, created.ID, request_models.UpdateUserRequest{
		Prenom: testutil.StrPtr("Anne"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dupont", updated.Nom)
	assert.Equal(t, "Anne", updated.Prenom)
	assert.Equal(t, "marie@example.com", updated.Email)
	require.NotNil(t, updated.Adresse)
	assert.Equal(t, "1 rue A", *updated.Adresse)

	again, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, again)
}

func TestUserService_UpdateUser_Errors(t *testing.T) {
	svc, _, _ := newUserServiceForTest()
	ctx := context.Background()

	_, err := svc.UpdateUser(ctx, 404, request_models.UpdateUserRequest{Nom: testutil.StrPtr("x")})
	assert.ErrorIs(t, err, utils.ErrUserNotFound)

	first, err := svc.CreateUser(ctx, request_models.CreateUserRequest{Nom: testutil.StrPtr("a"), Prenom: testutil.StrPtr("b"), Email: testutil.StrPtr("a@example.com")})
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, request_models.CreateUserRequest{Nom: testutil.StrPtr("c"), Prenom: testutil.StrPtr("d"), Email: testutil.StrPtr("c@example.com")})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, first.ID, request_models.UpdateUserRequest{Email: testutil.StrPtr("c@example.com")})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, users, dests := newUserServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, request_models.CreateUserRequest{Nom: testutil.StrPtr("a"), Prenom: testutil.StrPtr("b"), Email: testutil.StrPtr("a@example.com")})
	require.NoError(t, err)
	dest := &db_models.Destination{City: "Lyon", Country: "France"}
	require.NoError(t, dests.Create(ctx, dest))
	require.NoError(t, svc.AddFavorite(ctx, created.ID, dest.ID))

	require.NoError(t, svc.DeleteUser(ctx, created.ID))
	assert.Empty(t, users.favorites)
	assert.Contains(t, dests.items, dest.ID)

	_, err = svc.GetUser(ctx, created.ID)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteUser(ctx, created.ID), utils.ErrUserNotFound)
}

func TestUserService_Favorites(t *testing.T) {
	svc, users, dests := newUserServiceForTest()
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, request_models.CreateUserRequest{Nom: testutil.StrPtr("a"), Prenom: testutil.StrPtr("b"), Email: testutil.StrPtr("a@example.com")})
	require.NoError(t, err)
	lyon := &db_models.Destination{City: "Lyon", Country: "France"}
	nice := &db_models.Destination{City: "Nice", Country: "France"}
	require.NoError(t, dests.Create(ctx, lyon))
	require.NoError(t, dests.Create(ctx, nice))

	assert.ErrorIs(t, svc.AddFavorite(ctx, 99, lyon.ID), utils.ErrUserNotFound)
	assert.ErrorIs(t, svc.AddFavorite(ctx, user.ID, 99), utils.ErrDestinationNotFound)

	require.NoError(t, svc.AddFavorite(ctx, user.ID, nice.ID))
	require.NoError(t, svc.AddFavorite(ctx, user.ID, lyon.ID))
	require.NoError(t, svc.AddFavorite(ctx, user.ID, lyon.ID), "adding twice is not an error")
	assert.Len(t, users.favorites, 2)

	favs, err := svc.ListFavorites(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "Lyon", favs[0].City)
	assert.Equal(t, "Nice", favs[1].City)

	require.NoError(t, svc.RemoveFavorite(ctx, user.ID, lyon.ID))
	assert.ErrorIs(t, svc.RemoveFavorite(ctx, user.ID, lyon.ID), utils.ErrNotInFavorites)
	assert.ErrorIs(t, svc.RemoveFavorite(ctx, user.ID, 99), utils.ErrDestinationNotFound)

	_, err = svc.ListFavorites(ctx, 99)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}
