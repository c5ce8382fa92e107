package http

import (
	"net/http"

	"blogium/internal/usecase"
	"blogium/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationUseCase usecase.LocationUseCase
	logger          *logger.Logger
}

func NewLocationHandler(locationUseCase usecase.LocationUseCase, logger *logger.Logger) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
		logger:          logger,
	}
}

type LocationRequest struct {
	Name        string `json:"name" binding:"required,max=256"`
	IsPublished bool   `json:"is_published"`
}

// ListLocations godoc
// @Summary      List published locations
// @Tags         locations
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationUseCase.List()
	if err != nil {
		h.logger.Error("Failed to list locations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// CreateLocation godoc
// @Summary      Create a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LocationRequest true "Location data"
// @Success      201  {object}  entity.Location
// @Failure      400  {object}  map[string]string
// @Router       /admin/locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationUseCase.Create(usecase.LocationInput{
		Name:        req.Name,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

// UpdateLocation godoc
// @Summary      Update a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Location ID"
// @Param        request body LocationRequest true "Location data"
// @Success      200  {object}  entity.Location
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationUseCase.Update(c.Param("id"), usecase.LocationInput{
		Name:        req.Name,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// DeleteLocation godoc
// @Summary      Delete a location
// @Description  Posts at the location survive with the location reference cleared.
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Location ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	if err := h.locationUseCase.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}
