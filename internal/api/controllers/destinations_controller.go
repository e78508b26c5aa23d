package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecotrip/internal/models/request_models"
	"ecotrip/internal/services"
	"ecotrip/pkg/utils"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
	ecoPlanService     services.EcoPlanServiceInterface
}

func NewDestinationsController(destinationService services.DestinationServiceInterface, ecoPlanService services.EcoPlanServiceInterface) *DestinationsController {
	return &DestinationsController{
		destinationService: destinationService,
		ecoPlanService:     ecoPlanService,
	}
}

func (d *DestinationsController) CreateDestination(c *gin.Context) {
	var req request_models.CreateDestinationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	destination, err := d.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, destination)
}

// ListDestinations godoc
// @Summary List destinations
// @Tags Destinations
// @Produce json
// @Param country query string false "Exact country filter"
// @Success 200 {array} response_models.DestinationResponse
// @Router /destinations [get]
func (d *DestinationsController) ListDestinations(c *gin.Context) {
	destinations, err := d.destinationService.ListDestinations(c.Request.Context(), c.Query("country"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, destinations)
}

func (d *DestinationsController) GetDestination(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	destination, err := d.destinationService.GetDestination(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, destination)
}

func (d *DestinationsController) ListDestinationActivities(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	activities, err := d.destinationService.ListDestinationActivities(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, activities)
}

// EcoPlan godoc
// @Summary Eco-friendlier alternatives for planned activities
// @Description Sends the destination description and the activities to the AI provider.
// @Description Unparsable AI answers are returned as {raw_response, note}.
// @Tags Destinations
// @Accept json
// @Produce json
// @Param id path int true "Destination ID"
// @Param request body request_models.EcoPlanRequest true "Planned activities"
// @Success 200 {object} response_models.EcoPlanResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /destinations/{id}/eco-plan [post]
func (d *DestinationsController) EcoPlan(c *gin.Context) {
	if !d.ecoPlanService.Available() {
		utils.HandleServiceError(c, utils.ErrEcoServiceUnavailable)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.EcoPlanRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plan, err := d.ecoPlanService.BuildEcoPlan(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, plan)
}
