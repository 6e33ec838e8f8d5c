package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trippin/internal/models/request_models"
	"trippin/internal/services"
	"trippin/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, logger *zap.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// GenerateItinerary answers with the bare itinerary body, which is what the
// web client reads.
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, i.logger, utils.ErrInvalidBody)
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

func (i *ItineraryController) GetCatalog(c *gin.Context) {
	location := c.Param("location")
	if location == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location is required")
		return
	}

	catalog, err := i.itineraryService.GetCatalog(c.Request.Context(), location)
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	utils.RespondSuccess(c, catalog, "Catalog fetched successfully")
}

func (i *ItineraryController) ListDestinations(c *gin.Context) {
	destinations, err := i.itineraryService.ListDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}
