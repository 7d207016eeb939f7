package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/employment-api/internal/dtos"
	"github.com/hirewire/employment-api/internal/models"
	"github.com/hirewire/employment-api/internal/services"
	"github.com/hirewire/employment-api/internal/store"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

func (h *JobHandler) List(c *gin.Context) {
	records, err := h.Jobs.List(c.Query("Domain"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *JobHandler) Get(c *gin.Context) {
	rec, err := h.Jobs.GetByJobID(c.Param("jobId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "JobId, JobName, and Domain are required",
		})
		return
	}

	rec, err := h.Jobs.Create(&req)
	if errors.Is(err, services.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Conflict",
			"message": fmt.Sprintf("Job with JobId %v already exists", req.JobID),
		})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *JobHandler) Update(c *gin.Context) {
	var patch models.Record
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": "request body must be a JSON object"})
		return
	}

	rec, err := h.Jobs.UpdateByJobID(c.Param("jobId"), patch)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *JobHandler) Delete(c *gin.Context) {
	jobID := c.Param("jobId")
	err := h.Jobs.DeleteByJobID(jobID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": fmt.Sprintf("Job with JobId %s not found", jobID),
		})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Job %s deleted successfully", jobID)})
}
