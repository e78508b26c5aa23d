package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecotrip/internal/models/request_models"
	"ecotrip/internal/services"
	"ecotrip/pkg/utils"
)

type UsersController struct {
	userService services.UserServiceInterface
}

func NewUsersController(userService services.UserServiceInterface) *UsersController {
	return &UsersController{
		userService: userService,
	}
}

// CreateUser godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "User payload"
// @Success 201 {object} response_models.UserResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /users [post]
func (u *UsersController) CreateUser(c *gin.Context) {
	var req request_models.CreateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	user, err := u.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, user)
}

func (u *UsersController) GetUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	user, err := u.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Partially update a user
// @Description Only the supplied fields are overwritten
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body request_models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} response_models.UserResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [put]
func (u *UsersController) UpdateUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.UpdateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	user, err := u.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, user)
}

func (u *UsersController) DeleteUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := u.userService.DeleteUser(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "User deleted")
}

// AddFavorite godoc
// @Summary Add a destination to a user's favorites
// @Tags Favorites
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body request_models.AddFavoriteRequest true "Destination to add"
// @Success 201 {object} response_models.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id}/favorites [post]
func (u *UsersController) AddFavorite(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.AddFavoriteRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := u.userService.AddFavorite(c.Request.Context(), userID, *req.DestinationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusCreated, "Destination added to favorites")
}

func (u *UsersController) ListFavorites(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	favorites, err := u.userService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, favorites)
}

func (u *UsersController) RemoveFavorite(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	destinationID, err := parseIDParam(c, "destinationId")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := u.userService.RemoveFavorite(c.Request.Context(), userID, destinationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Destination removed from favorites")
}
