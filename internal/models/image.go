package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
)

const (
	ImageStatusPending   = "pending"
	ImageStatusProcessed = "processed"
)

// Image - запись о загруженном снимке до обработки моделью.
// EventID заполняется, когда воркер привязывает снимок к событию.
type Image struct {
	ID         int64           `json:"imageId"`
	IncidentID uuid.UUID       `json:"incidentID"`
	UserID     string          `json:"userId"`
	Location   geo.Point       `json:"location"`
	Timestamp  time.Time       `json:"timestamp"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	Exif       json.RawMessage `json:"exif,omitempty"`
	Status     string          `json:"status"`
	EventID    *string         `json:"eventId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// UploadInput - снимок, присланный клиентом
type UploadInput struct {
	Base64    string
	UserID    string
	Location  geo.GeoJSONPoint
	Timestamp time.Time
	Exif      json.RawMessage
}

// UploadResult - идентификаторы принятого снимка
type UploadResult struct {
	ImageID    int64
	IncidentID uuid.UUID
	Model      string
	Queue      string
}

// IngestionMessage - сообщение для конвейера модели
type IngestionMessage struct {
	IncidentID   string           `json:"incident_id"`
	UserID       string           `json:"userId"`
	Location     geo.GeoJSONPoint `json:"location"`
	Timestamp    time.Time        `json:"timestamp"`
	Base64String string           `json:"base64String"`
	ImageURL     string           `json:"image_url,omitempty"`
	Model        string           `json:"model"`
}
