package models

import (
	"testing"
	"time"

	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_CandidateAgencies_MergesLegacyField(t *testing.T) {
	e := &Event{
		AssignedAgency:   &AgencySet{Agencies: []string{"agency-1111", "agency-2222"}},
		AssignedAgencies: &AgencySet{Agencies: []string{"agency-2222", "agency-3333"}},
	}

	assert.Equal(t, []string{"agency-1111", "agency-2222", "agency-3333"}, e.CandidateAgencies())
	assert.True(t, e.IsAssignedTo("agency-3333"))
	assert.False(t, e.IsAssignedTo("agency-9999"))
	assert.Equal(t, "agency-1111", e.PrimaryAgency())
}

func TestEvent_Project(t *testing.T) {
	staff := "Ravi"
	e := &Event{
		EventID:     "E1",
		Description: "fire",
		Status:      StatusAssigned,
		Location:    geo.Point{Latitude: 12.9, Longitude: 77.6},
		Timestamp:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		GroundStaff: &staff,
	}

	out, err := e.Project(nil)
	require.NoError(t, err)
	assert.Len(t, out, len(DefaultEventFields))
	assert.Equal(t, geo.GeoJSONPoint{Type: "Point", Coordinates: []float64{77.6, 12.9}}, out["location"])
	assert.NotContains(t, out, "ground_staff")

	out, err = e.Project([]string{"ground_staff"})
	require.NoError(t, err)
	assert.Equal(t, &staff, out["ground_staff"])

	_, err = e.Project([]string{"password"})
	assert.Error(t, err)
}

func TestParseFields(t *testing.T) {
	assert.Equal(t, []string{"status", "ground_staff"}, ParseFields(" status, ,ground_staff"))
	assert.Empty(t, ParseFields(""))
}

func TestIncident_FirstBox(t *testing.T) {
	inc := Incident{BoundingBoxes: []BoundingBox{{1, 2, 3, 4}, {5, 6, 7, 8}}}
	box, ok := inc.FirstBox()
	require.True(t, ok)
	assert.Equal(t, BoundingBox{1, 2, 3, 4}, box)

	_, ok = (&Incident{}).FirstBox()
	assert.False(t, ok)
}

func TestAgency_TypeAndHandles(t *testing.T) {
	a := &Agency{EventResponsibleFor: []string{"Fire", "flood"}}
	assert.Equal(t, AgencyTypeLocation, a.Type())
	assert.True(t, a.Handles("fire"))
	assert.False(t, a.Handles("theft"))

	j, err := geo.NewJurisdiction(geo.PolygonInput{Type: "Polygon", Coordinates: [][]float64{{1, 2}, {3, 4}, {5, 6}}})
	require.NoError(t, err)
	a.Jurisdiction = j
	assert.Equal(t, AgencyTypeJurisdiction, a.Type())
}
