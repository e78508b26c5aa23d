package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecotrip/internal/models/request_models"
	"ecotrip/internal/services"
	"ecotrip/pkg/utils"
)

type ActivitiesController struct {
	activityService services.ActivityServiceInterface
}

func NewActivitiesController(activityService services.ActivityServiceInterface) *ActivitiesController {
	return &ActivitiesController{
		activityService: activityService,
	}
}

func (a *ActivitiesController) CreateActivity(c *gin.Context) {
	var req request_models.ActivityRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	activity, err := a.activityService.CreateActivity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, activity)
}

func (a *ActivitiesController) GetActivity(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	activity, err := a.activityService.GetActivity(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, activity)
}
