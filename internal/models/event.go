package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/agency_dispatch_system/internal/geo"
)

// BoundingBox - рамка детекции [x1, y1, x2, y2]
type BoundingBox [4]float64

// Incident - отдельный снимок в составе события
type Incident struct {
	IncidentID    string           `json:"incident_id,omitempty"`
	ImageURL      string           `json:"image_url"`
	Location      geo.GeoJSONPoint `json:"location"`
	Timestamp     time.Time        `json:"timestamp"`
	BoundingBoxes []BoundingBox    `json:"bounding_boxes"`
}

// Point возвращает координаты снимка, false если они некорректны
func (i *Incident) Point() (geo.Point, bool) {
	p, err := i.Location.Point()
	if err != nil {
		return geo.Point{}, false
	}
	return p, true
}

// FirstBox возвращает первую рамку, если она есть
func (i *Incident) FirstBox() (BoundingBox, bool) {
	if len(i.BoundingBoxes) == 0 {
		return BoundingBox{}, false
	}
	return i.BoundingBoxes[0], true
}

// AgencySet - множество кандидатов {agencies: [...]}
type AgencySet struct {
	Agencies []string `json:"agencies"`
}

// Event - событие (отчет об инциденте), агрегирующее снимки
type Event struct {
	EventID          string      `json:"event_id"`
	Description      string      `json:"description"`
	Category         string      `json:"category"`
	Critical         bool        `json:"critical"`
	Status           EventStatus `json:"status"`
	Location         geo.Point   `json:"location"`
	Timestamp        time.Time   `json:"timestamp"`
	Incidents        []Incident  `json:"incidents"`
	AssignedAgency   *AgencySet  `json:"assigned_agency,omitempty"`
	AssignedAgencies *AgencySet  `json:"assigned_agencies,omitempty"`
	GroundStaff      *string     `json:"ground_staff,omitempty"`
	GroundStaffID    *string     `json:"ground_staff_id,omitempty"`
	AssignmentTime   *time.Time  `json:"assignment_time,omitempty"`
	ResolvedAt       *time.Time  `json:"resolved_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// CandidateAgencies объединяет оба поля назначения (assigned_agency и
// устаревшее assigned_agencies) без дубликатов
func (e *Event) CandidateAgencies() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, set := range []*AgencySet{e.AssignedAgency, e.AssignedAgencies} {
		if set == nil {
			continue
		}
		for _, id := range set.Agencies {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func (e *Event) IsAssignedTo(agencyID string) bool {
	for _, id := range e.CandidateAgencies() {
		if id == agencyID {
			return true
		}
	}
	return false
}

// PrimaryAgency - первый кандидат; после принятия он единственный
func (e *Event) PrimaryAgency() string {
	candidates := e.CandidateAgencies()
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}

func (e *Event) FirstIncident() *Incident {
	if len(e.Incidents) == 0 {
		return nil
	}
	return &e.Incidents[0]
}

// ImageURLs возвращает непустые ссылки на снимки всех инцидентов
func (e *Event) ImageURLs() []string {
	urls := make([]string, 0, len(e.Incidents))
	for _, inc := range e.Incidents {
		if inc.ImageURL != "" {
			urls = append(urls, inc.ImageURL)
		}
	}
	return urls
}

// DefaultEventFields - поля, возвращаемые getById без параметра fields
var DefaultEventFields = []string{"event_id", "status", "incidents", "description", "timestamp", "location"}

var eventFieldGetters = map[string]func(e *Event) any{
	"event_id":          func(e *Event) any { return e.EventID },
	"description":       func(e *Event) any { return e.Description },
	"category":          func(e *Event) any { return e.Category },
	"critical":          func(e *Event) any { return e.Critical },
	"status":            func(e *Event) any { return e.Status },
	"location":          func(e *Event) any { return geo.NewGeoJSONPoint(e.Location) },
	"timestamp":         func(e *Event) any { return e.Timestamp },
	"incidents":         func(e *Event) any { return e.Incidents },
	"assigned_agency":   func(e *Event) any { return e.AssignedAgency },
	"assigned_agencies": func(e *Event) any { return e.AssignedAgencies },
	"ground_staff":      func(e *Event) any { return e.GroundStaff },
	"ground_staff_id":   func(e *Event) any { return e.GroundStaffID },
	"assignment_time":   func(e *Event) any { return e.AssignmentTime },
	"resolved_at":       func(e *Event) any { return e.ResolvedAt },
	"created_at":        func(e *Event) any { return e.CreatedAt },
	"updated_at":        func(e *Event) any { return e.UpdatedAt },
}

// ValidateEventFields проверяет, что все запрошенные поля известны
func ValidateEventFields(fields []string) error {
	for _, f := range fields {
		if _, ok := eventFieldGetters[f]; !ok {
			return fmt.Errorf("unknown field %q", f)
		}
	}
	return nil
}

// Project возвращает поля по умолчанию плюс запрошенные
func (e *Event) Project(fields []string) (map[string]any, error) {
	if err := ValidateEventFields(fields); err != nil {
		return nil, err
	}
	out := make(map[string]any, len(DefaultEventFields)+len(fields))
	for _, f := range append(append([]string{}, DefaultEventFields...), fields...) {
		out[f] = eventFieldGetters[f](e)
	}
	return out, nil
}

// ParseFields разбирает CSV-параметр fields
func ParseFields(raw string) []string {
	fields := make([]string, 0)
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// StatusUpdate - запрос на смену статуса события
type StatusUpdate struct {
	EventID         string
	Status          string
	AgencyID        string
	GroundStaffName string
	GroundStaffID   string
}

// StatusTransition - условное обновление: применяется, только если текущий статус равен From.
// Agencies == nil оставляет множество кандидатов без изменений.
type StatusTransition struct {
	EventID        string
	From           EventStatus
	To             EventStatus
	Agencies       []string
	GroundStaff    *string
	GroundStaffID  *string
	AssignmentTime *time.Time
	ResolvedAt     *time.Time
}
