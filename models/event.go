package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TaskEvent is the lifecycle event envelope published to the broker
// after a committed create, update or delete. It is not persisted.
type TaskEvent struct {
	ID        uuid.UUID       `json:"id"`
	Event     string          `json:"event"`
	Entity    string          `json:"entity"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

func NewTaskEvent(event string, data interface{}) (*TaskEvent, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &TaskEvent{
		ID:        uuid.New(),
		Event:     event,
		Entity:    "task",
		Timestamp: time.Now().UTC(),
		Data:      dataBytes,
	}, nil
}
