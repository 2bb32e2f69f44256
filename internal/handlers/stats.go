package handlers

import (
	"bytes"
	"net/http"

	"todo-service/backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsHandler struct {
	db           *gorm.DB
	statsService services.StatsService
}

func NewStatsHandler(db *gorm.DB, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{db: db, statsService: statsService}
}

// Stats serves both /stats and its historical alias /stats-pandas.
func (h *StatsHandler) Stats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.statsService.Stats(h.db, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Export streams the caller's todos as a CSV attachment named todos.csv.
func (h *StatsHandler) Export(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.statsService.ExportCSV(h.db, user.ID, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export todos"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="todos.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
