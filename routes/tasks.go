package routes

import (
	"errors"
	"net/http"
	"strconv"

	"taskwise/taskwise/database"
	"taskwise/taskwise/models"
	"taskwise/taskwise/services"

	"github.com/gin-gonic/gin"
)

const maxListLimit = 100

func RegisterTaskRoutes(router *gin.Engine, db *database.Database, taskService services.TaskServiceInterface, classifierService services.ClassifierServiceInterface) {
	group := router.Group("/tasks")
	group.POST("/", func(c *gin.Context) { CreateTask(c, db, taskService) })
	group.GET("/", func(c *gin.Context) { GetTasks(c, db, taskService) })
	group.POST("/analyze", func(c *gin.Context) { AnalyzeTask(c, classifierService) })
	group.GET("/:id", func(c *gin.Context) { GetTaskById(c, db, taskService) })
	group.PATCH("/:id", func(c *gin.Context) { UpdateTask(c, db, taskService) })
	group.DELETE("/:id", func(c *gin.Context) { DeleteTask(c, db, taskService) })
}

func CreateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	var input models.TaskCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	createdTask, err := taskService.CreateTask(db, input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, createdTask)
}

func GetTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "offset must be a non-negative integer"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 || limit > maxListLimit {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be an integer between 0 and 100"})
		return
	}

	tasks, err := taskService.GetTasks(db, offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func GetTaskById(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := taskService.GetTaskById(db, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

func UpdateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var patch models.TaskUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	updatedTask, err := taskService.UpdateTask(db, id, patch)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Task not found"})
			return
		}
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updatedTask)
}

func DeleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := taskService.DeleteTask(db, id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AnalyzeTask classifies free text passed as a query parameter. An empty
// description is valid and classifies as neutral; an absent one is an error.
func AnalyzeTask(c *gin.Context, classifierService services.ClassifierServiceInterface) {
	description, exists := c.GetQuery("description")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "description query parameter is required"})
		return
	}

	sentiment := classifierService.Classify(description)
	c.JSON(http.StatusOK, gin.H{
		"description":         description,
		"predicted_sentiment": sentiment,
	})
}

func parseTaskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "task id must be an integer"})
		return 0, false
	}
	return uint(id), true
}
