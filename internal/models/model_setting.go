package models

import "time"

// ModelSetting - активная модель и ее очередь. UpdatedAt == nil, если значение по умолчанию.
type ModelSetting struct {
	Model     string     `json:"activeModel"`
	Queue     string     `json:"queue,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
