package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/employment-api/internal/dtos"
	"github.com/hirewire/employment-api/internal/services"
)

type AdminHandler struct {
	Admins *services.AdminService
}

func NewAdminHandler(admins *services.AdminService) *AdminHandler {
	return &AdminHandler{Admins: admins}
}

// Register is POST /api-admin. The access token appears in this response and
// nowhere else afterwards.
func (h *AdminHandler) Register(c *gin.Context) {
	var req dtos.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "adminEmail is required",
		})
		return
	}

	admin, err := h.Admins.Register(&req)
	if errors.Is(err, services.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Conflict",
			"message": "User already registered. Try different email",
		})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Admin registered successfully",
		"accessToken": admin["token"],
		"createdDate": admin["createdDate"],
	})
}
