package models

import (
	"time"

	"github.com/shenikar/agency_dispatch_system/internal/geo"
)

// Detection - результат работы модели по одному снимку
type Detection struct {
	IncidentID     string           `json:"incident_id"`
	DetectedObject string           `json:"detected_object"`
	Critical       bool             `json:"critical"`
	Location       geo.GeoJSONPoint `json:"location"`
	Timestamp      time.Time        `json:"timestamp"`
	ImageURL       string           `json:"image_url"`
	BoundingBoxes  []BoundingBox    `json:"bounding_boxes"`
	Description    string           `json:"description"`
}

// Incident превращает детекцию в запись инцидента события
func (d *Detection) Incident() Incident {
	return Incident{
		IncidentID:    d.IncidentID,
		ImageURL:      d.ImageURL,
		Location:      d.Location,
		Timestamp:     d.Timestamp,
		BoundingBoxes: d.BoundingBoxes,
	}
}

// DispatchResult - итог обработки детекции
type DispatchResult struct {
	EventID    string
	Created    bool
	Candidates []string
}
