package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"ecotrip/internal/models/db_models"
)

type favoriteKey struct{ userID, destinationID uint }

type fakeUserRepo struct {
	users     map[uint]*db_models.User
	favorites map[favoriteKey]bool
	dests     *fakeDestinationRepo
	nextID    uint
	err       error
}

func newFakeUserRepo(dests *fakeDestinationRepo) *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[uint]*db_models.User),
		favorites: make(map[favoriteKey]bool),
		dests:     dests,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *db_models.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *db_models.User) error {
	for id, u := range f.users {
		if id != user.ID && u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	for k := range f.favorites {
		if k.userID == id {
			delete(f.favorites, k)
		}
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) AddFavorite(_ context.Context, userID, destinationID uint) (bool, error) {
	k := favoriteKey{userID, destinationID}
	if f.favorites[k] {
		return false, nil
	}
	f.favorites[k] = true
	return true, nil
}

func (f *fakeUserRepo) RemoveFavorite(_ context.Context, userID, destinationID uint) (bool, error) {
	k := favoriteKey{userID, destinationID}
	if !f.favorites[k] {
		return false, nil
	}
	delete(f.favorites, k)
	return true, nil
}

func (f *fakeUserRepo) IsFavorite(_ context.Context, userID, destinationID uint) (bool, error) {
	return f.favorites[favoriteKey{userID, destinationID}], nil
}

func (f *fakeUserRepo) ListFavorites(_ context.Context, userID uint) ([]db_models.Destination, error) {
	var out []db_models.Destination
	for k := range f.favorites {
		if k.userID != userID {
			continue
		}
		if d, ok := f.dests.items[k.destinationID]; ok {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeDestinationRepo struct {
	items  map[uint]*db_models.Destination
	nextID uint
	err    error
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{items: make(map[uint]*db_models.Destination)}
}

func (f *fakeDestinationRepo) Create(_ context.Context, d *db_models.Destination) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	d.ID = f.nextID
	stored := *d
	f.items[d.ID] = &stored
	return nil
}

func (f *fakeDestinationRepo) GetByID(_ context.Context, id uint) (*db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	out := *d
	return &out, nil
}

func (f *fakeDestinationRepo) List(_ context.Context, country string) ([]db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]db_models.Destination, 0, len(f.items))
	for _, d := range f.items {
		if country == "" || d.Country == country {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeActivityRepo struct {
	items  map[uint]*db_models.Activity
	dests  *fakeDestinationRepo
	nextID uint
}

func newFakeActivityRepo(dests *fakeDestinationRepo) *fakeActivityRepo {
	return &fakeActivityRepo{items: make(map[uint]*db_models.Activity), dests: dests}
}

func (f *fakeActivityRepo) Create(_ context.Context, a *db_models.Activity) error {
	if a.DestinationID != nil {
		if _, ok := f.dests.items[*a.DestinationID]; !ok {
			return gorm.ErrForeignKeyViolated
		}
	}
	f.nextID++
	a.ID = f.nextID
	stored := *a
	f.items[a.ID] = &stored
	return nil
}

func (f *fakeActivityRepo) GetByID(_ context.Context, id uint) (*db_models.Activity, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	out := *a
	return &out, nil
}

func (f *fakeActivityRepo) ListByDestination(_ context.Context, destinationID uint) ([]db_models.Activity, error) {
	var out []db_models.Activity
	for _, a := range f.items {
		if a.DestinationID != nil && *a.DestinationID == destinationID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
