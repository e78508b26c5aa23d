package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecotrip/internal/models/db_models"
)

type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) error
	GetByID(ctx context.Context, id uint) (*db_models.User, error)
	Update(ctx context.Context, user *db_models.User) error
	Delete(ctx context.Context, id uint) error

	// AddFavorite reports false when the pair was already stored.
	AddFavorite(ctx context.Context, userID, destinationID uint) (bool, error)
	// RemoveFavorite reports false when there was nothing to remove.
	RemoveFavorite(ctx context.Context, userID, destinationID uint) (bool, error)
	IsFavorite(ctx context.Context, userID, destinationID uint) (bool, error)
	ListFavorites(ctx context.Context, userID uint) ([]db_models.Destination, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&db_models.UserFavorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.User{}, id).Error
	})
}

func (r *userRepository) AddFavorite(ctx context.Context, userID, destinationID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&db_models.UserFavorite{UserID: userID, DestinationID: destinationID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *userRepository) RemoveFavorite(ctx context.Context, userID, destinationID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND destination_id = ?", userID, destinationID).
		Delete(&db_models.UserFavorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *userRepository) IsFavorite(ctx context.Context, userID, destinationID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.UserFavorite{}).
		Where("user_id = ? AND destination_id = ?", userID, destinationID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) ListFavorites(ctx context.Context, userID uint) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Joins("JOIN users_favorites ON users_favorites.destination_id = destinations.id").
		Where("users_favorites.user_id = ?", userID).
		Order("destinations.id").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}
