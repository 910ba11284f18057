package models

import "time"

// EventReport - расширенный отчет по событию
type EventReport struct {
	EventID         string         `json:"event_id"`
	Description     string         `json:"description"`
	Status          EventStatus    `json:"status"`
	AssignmentsTime *time.Time     `json:"assignments_time"`
	GroundStaff     *string        `json:"ground_staff"`
	Latitude        *float64       `json:"latitude"`
	Longitude       *float64       `json:"longitude"`
	ImageURL        *string        `json:"image_url"`
	BoundingBoxes   []BoundingBox  `json:"bounding_boxes"`
	AssignedAgency  *string        `json:"assignedAgency"`
	AgencyID        *string        `json:"AgencyId"`
	Incidents       []IncidentView `json:"incidents"`
	Extra           map[string]any `json:"extra,omitempty"`
}

// IncidentView - инцидент с разрешенным снимком и плоскими полями первой рамки
type IncidentView struct {
	Latitude      *float64      `json:"latitude"`
	Longitude     *float64      `json:"longitude"`
	Timestamp     time.Time     `json:"timestamp"`
	ImageURL      string        `json:"image_url"`
	Base64Image   *string       `json:"base64_image"`
	BoundingBoxes []BoundingBox `json:"bounding_boxes"`
	X1            *float64      `json:"x1"`
	Y1            *float64      `json:"y1"`
	X2            *float64      `json:"x2"`
	Y2            *float64      `json:"y2"`
}

// DashboardEvent - событие в панели агентства
type DashboardEvent struct {
	EventID        string         `json:"event_id"`
	Description    string         `json:"description"`
	Status         EventStatus    `json:"status"`
	AssignmentTime *time.Time     `json:"assignment_time"`
	Latitude       *float64       `json:"latitude"`
	Longitude      *float64       `json:"longitude"`
	ImageURL       *string        `json:"image_url"`
	GroundStaff    *string        `json:"ground_staff"`
	Timestamp      time.Time      `json:"timestamp"`
	AssignedAgency []string       `json:"assigned_agency"`
	BoundingBoxes  []BoundingBox  `json:"boundingBoxes"`
	X1             *float64       `json:"x1"`
	Y1             *float64       `json:"y1"`
	X2             *float64       `json:"x2"`
	Y2             *float64       `json:"y2"`
	AllIncidents   []IncidentView `json:"allIncidents"`
}

// Dashboard - панель агентства
type Dashboard struct {
	AgencyName     string           `json:"AgencyName"`
	AgencyID       string           `json:"AgencyId"`
	AssignedEvents []DashboardEvent `json:"assignedEvents"`
}
