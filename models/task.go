package models

import "encoding/json"

// Task is the stored shape, returned by creates, reads and updates.
type Task struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null;index" json:"title"`
	Description *string `json:"description"`
	IsCompleted bool    `gorm:"not null;default:false" json:"is_completed"`
}

// TaskCreate is the request shape for creating a task. The id is
// assigned by the storage engine on insert.
type TaskCreate struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"is_completed"`
}

// TaskUpdate is the partial-patch shape: only fields present in the
// request body are applied, including explicit nulls. An absent field
// means "leave unchanged"; a present field overwrites, including with
// a zero value or, for description, with null.
type TaskUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`

	TitleSet       bool `json:"-"`
	DescriptionSet bool `json:"-"`
	IsCompletedSet bool `json:"-"`
}

// UnmarshalJSON records which keys appeared in the body, so an explicit
// null can be told apart from an absent field.
func (u *TaskUpdate) UnmarshalJSON(data []byte) error {
	type taskUpdate TaskUpdate
	var decoded taskUpdate
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*u = TaskUpdate(decoded)
	_, u.TitleSet = fields["title"]
	_, u.DescriptionSet = fields["description"]
	_, u.IsCompletedSet = fields["is_completed"]
	return nil
}
