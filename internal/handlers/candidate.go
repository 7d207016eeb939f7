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

type CandidateHandler struct {
	Candidates *services.CandidateService
}

func NewCandidateHandler(candidates *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{Candidates: candidates}
}

// List is GET /candidates. The Role filter has already been validated against
// the closed enumeration by the middleware chain.
func (h *CandidateHandler) List(c *gin.Context) {
	records, err := h.Candidates.List(c.Query("Role"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get is GET /candidates/:candidateId — lookup by the public key, not the
// internal id.
func (h *CandidateHandler) Get(c *gin.Context) {
	rec, err := h.Candidates.GetByCandidateID(c.Param("candidateId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Create is POST /candidates.
func (h *CandidateHandler) Create(c *gin.Context) {
	var req dtos.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "candidateId, candidateName and Role are required",
		})
		return
	}

	rec, err := h.Candidates.Create(&req)
	if errors.Is(err, services.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Conflict",
			"message": fmt.Sprintf("Candidate with candidateId %v already exists", req.CandidateID),
		})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Update serves both PATCH and PUT on /candidates/:candidateId as a shallow
// merge: body fields override, everything else survives.
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch models.Record
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": "request body must be a JSON object"})
		return
	}

	rec, err := h.Candidates.UpdateByCandidateID(c.Param("candidateId"), patch)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete is DELETE /candidates/:candidateId, answering with a confirmation
// message rather than an empty 204.
func (h *CandidateHandler) Delete(c *gin.Context) {
	candidateID := c.Param("candidateId")
	err := h.Candidates.DeleteByCandidateID(candidateID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": fmt.Sprintf("Candidate with candidateId %s not found", candidateID),
		})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Candidate %s deleted successfully", candidateID)})
}
