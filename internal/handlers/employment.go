package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/employment-api/internal/models"
	"github.com/hirewire/employment-api/internal/services"
	"github.com/hirewire/employment-api/internal/store"
)

// EmploymentHandler serves the bearer-protected family. The token check has
// already happened in the middleware chain by the time these run.
type EmploymentHandler struct {
	Employments *services.EmploymentService
}

func NewEmploymentHandler(employments *services.EmploymentService) *EmploymentHandler {
	return &EmploymentHandler{Employments: employments}
}

func (h *EmploymentHandler) List(c *gin.Context) {
	records, err := h.Employments.List()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *EmploymentHandler) Get(c *gin.Context) {
	rec, err := h.Employments.GetByEmploymentID(c.Param("employmentId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employment not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *EmploymentHandler) Update(c *gin.Context) {
	var patch models.Record
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": "request body must be a JSON object"})
		return
	}

	rec, err := h.Employments.UpdateByEmploymentID(c.Param("employmentId"), patch)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employment not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete answers 204 with no body — unlike candidates and jobs, which
// confirm with a message. The split is deliberate and mirrored by the tests.
func (h *EmploymentHandler) Delete(c *gin.Context) {
	err := h.Employments.DeleteByEmploymentID(c.Param("employmentId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employment not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
