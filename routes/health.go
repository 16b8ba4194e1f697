package routes

import (
	"net/http"

	"taskwise/taskwise/database"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, db *database.Database) {
	router.GET("/healthz", func(c *gin.Context) { GetHealth(c, db) })
}

// GetHealth reports whether the storage engine is reachable.
func GetHealth(c *gin.Context, db *database.Database) {
	result, err := db.Query("SELECT 1")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "detail": err.Error()})
		return
	}

	var one int
	if err := result.Scan(&one).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
