package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecotrip/internal/models/db_models"
	"ecotrip/internal/models/request_models"
	"ecotrip/internal/models/response_models"
	"ecotrip/internal/repositories"
	"ecotrip/pkg/utils"
)

type UserServiceInterface interface {
	CreateUser(ctx context.Context, req request_models.CreateUserRequest) (response_models.UserResponse, error)
	GetUser(ctx context.Context, id uint) (response_models.UserResponse, error)
	UpdateUser(ctx context.Context, id uint, req request_models.UpdateUserRequest) (response_models.UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error

	AddFavorite(ctx context.Context, userID, destinationID uint) error
	RemoveFavorite(ctx context.Context, userID, destinationID uint) error
	ListFavorites(ctx context.Context, userID uint) ([]response_models.DestinationResponse, error)
}

type UserService struct {
	userRepo        repositories.UserRepository
	destinationRepo repositories.DestinationRepository
	logger          *zap.Logger
}

func NewUserService(userRepo repositories.UserRepository, destinationRepo repositories.DestinationRepository, logger *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepo:        userRepo,
		destinationRepo: destinationRepo,
		logger:          logger,
	}
}

func (s *UserService) CreateUser(ctx context.Context, req request_models.CreateUserRequest) (response_models.UserResponse, error) {
	user := &db_models.User{
		Nom:     stringValue(req.Nom),
		Prenom:  stringValue(req.Prenom),
		Email:   stringValue(req.Email),
		Adresse: req.Adresse,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return response_models.UserResponse{}, s.writeError("create user", err)
	}

	return toUserResponse(user), nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (response_models.UserResponse, error) {
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return response_models.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, req request_models.UpdateUserRequest) (response_models.UserResponse, error) {
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return response_models.UserResponse{}, err
	}

	if req.Nom != nil {
		user.Nom = *req.Nom
	}
	if req.Prenom != nil {
		user.Prenom = *req.Prenom
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Adresse != nil {
		user.Adresse = req.Adresse
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return response_models.UserResponse{}, s.writeError("update user", err)
	}

	return toUserResponse(user), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.loadUser(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete user", zap.Uint("user_id", id), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

// AddFavorite stores the pair once; adding an existing favorite again succeeds
// without creating a second row.
func (s *UserService) AddFavorite(ctx context.Context, userID, destinationID uint) error {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return err
	}
	if err := s.ensureDestination(ctx, destinationID); err != nil {
		return err
	}

	added, err := s.userRepo.AddFavorite(ctx, userID, destinationID)
	if err != nil {
		return s.writeError("add favorite", err)
	}
	if !added {
		s.logger.Info("destination already in favorites",
			zap.Uint("user_id", userID), zap.Uint("destination_id", destinationID))
	}
	return nil
}

func (s *UserService) RemoveFavorite(ctx context.Context, userID, destinationID uint) error {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return err
	}
	if err := s.ensureDestination(ctx, destinationID); err != nil {
		return err
	}

	removed, err := s.userRepo.RemoveFavorite(ctx, userID, destinationID)
	if err != nil {
		s.logger.Error("failed to remove favorite", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !removed {
		return utils.ErrNotInFavorites
	}
	return nil
}

func (s *UserService) ListFavorites(ctx context.Context, userID uint) ([]response_models.DestinationResponse, error) {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return nil, err
	}

	destinations, err := s.userRepo.ListFavorites(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list favorites", zap.Uint("user_id", userID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toDestinationResponses(destinations), nil
}

func (s *UserService) loadUser(ctx context.Context, id uint) (*db_models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch user", zap.Uint("user_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ensureDestination(ctx context.Context, id uint) error {
	destination, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch destination", zap.Uint("destination_id", id), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if destination == nil {
		return utils.ErrDestinationNotFound
	}
	return nil
}

func (s *UserService) writeError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return utils.ErrEmailAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return utils.ErrDestinationNotFound
	default:
		s.logger.Error("failed to "+op, zap.Error(err))
		return utils.ErrDatabaseError
	}
}
