package handlers

import (
	"net/http"

	"todo-service/backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterHandler struct {
	db          *gorm.DB
	userService services.UserService
}

func NewRegisterHandler(db *gorm.DB, userService services.UserService) *RegisterHandler {
	return &RegisterHandler{db: db, userService: userService}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
}

// Register creates an account and returns its API key. Registering a name
// that already exists returns the existing account's credential instead of
// failing.
func (h *RegisterHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, err := h.userService.Register(h.db, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to register user",
		})
		return
	}

	c.JSON(http.StatusOK, user.Public())
}
