package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"taskwise/taskwise/broker"
	"taskwise/taskwise/database"
	"taskwise/taskwise/models"

	"gorm.io/gorm"
)

type TaskServiceInterface interface {
	CreateTask(db *database.Database, input models.TaskCreate) (models.Task, error)
	GetTasks(db *database.Database, offset, limit int) ([]models.Task, error)
	GetTaskById(db *database.Database, id uint) (models.Task, error)
	UpdateTask(db *database.Database, id uint, patch models.TaskUpdate) (models.Task, error)
	DeleteTask(db *database.Database, id uint) error
}

type TaskService struct{}

func (s *TaskService) CreateTask(db *database.Database, input models.TaskCreate) (models.Task, error) {
	if input.Title == "" {
		return models.Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		IsCompleted: input.IsCompleted,
	}

	if err := tx.Create(&task).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	publishTaskEvent(broker.TaskCreated, map[string]interface{}{
		"task_id":      task.ID,
		"title":        task.Title,
		"is_completed": task.IsCompleted,
	})

	return task, nil
}

func (s *TaskService) GetTasks(db *database.Database, offset, limit int) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	result := db.DB.Offset(offset).Limit(limit).Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

func (s *TaskService) GetTaskById(db *database.Database, id uint) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(db *database.Database, id uint, patch models.TaskUpdate) (models.Task, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	// Only the fields present in the patch are overwritten. An explicit
	// null clears description and is rejected for the non-nullable fields.
	updates := map[string]interface{}{}
	if patch.TitleSet || patch.Title != nil {
		if patch.Title == nil || *patch.Title == "" {
			tx.Rollback()
			return models.Task{}, fmt.Errorf("%w: title must not be null or empty", ErrInvalidInput)
		}
		updates["title"] = *patch.Title
		task.Title = *patch.Title
	}
	if patch.DescriptionSet || patch.Description != nil {
		updates["description"] = patch.Description
		task.Description = patch.Description
	}
	if patch.IsCompletedSet || patch.IsCompleted != nil {
		if patch.IsCompleted == nil {
			tx.Rollback()
			return models.Task{}, fmt.Errorf("%w: is_completed must not be null", ErrInvalidInput)
		}
		updates["is_completed"] = *patch.IsCompleted
		task.IsCompleted = *patch.IsCompleted
	}

	if len(updates) > 0 {
		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			tx.Rollback()
			return models.Task{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	publishTaskEvent(broker.TaskUpdated, map[string]interface{}{
		"task_id":      task.ID,
		"title":        task.Title,
		"is_completed": task.IsCompleted,
	})

	return task, nil
}

func (s *TaskService) DeleteTask(db *database.Database, id uint) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	if err := tx.Delete(&task).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	publishTaskEvent(broker.TaskDeleted, map[string]interface{}{
		"task_id": task.ID,
	})

	return nil
}

// publishTaskEvent emits a lifecycle event after a committed write.
// Publish failures are logged, never surfaced to the caller.
func publishTaskEvent(event broker.EventType, data map[string]interface{}) {
	evt, err := models.NewTaskEvent(string(event), data)
	if err != nil {
		log.Printf("Failed to build %s event: %v", event, err)
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}

	broker.PublishMessage(broker.TaskEventsSubject, payload)
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
