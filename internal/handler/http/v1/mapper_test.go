package v1

import (
	"encoding/json"
	"testing"

	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDTOToUpdateAgencyInput_Jurisdiction(t *testing.T) {
	tests := []struct {
		name       string
		raw        json.RawMessage
		wantRemove bool
		wantPoly   bool
		wantErr    bool
	}{
		{name: "absent"},
		{name: "null removes", raw: json.RawMessage(" null "), wantRemove: true},
		{name: "polygon", raw: json.RawMessage(`{"type":"Polygon","coordinates":[[1,1],[1,2],[2,2]]}`), wantPoly: true},
		{name: "not an object", raw: json.RawMessage(`[1,2]`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := DTOToUpdateAgencyInput(UpdateAgencyRequest{Jurisdiction: tt.raw})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemove, input.RemoveJurisdiction)
			assert.Equal(t, tt.wantPoly, input.Jurisdiction != nil)
		})
	}
}

func TestModelToAgencyResponse_JurisdictionAgency(t *testing.T) {
	jurisdiction, err := geo.NewJurisdiction(geo.PolygonInput{
		Type:        "Polygon",
		Coordinates: [][]float64{{28.5, 77.1}, {28.5, 77.3}, {28.7, 77.3}},
	})
	require.NoError(t, err)

	resp := ModelToAgencyResponse(&models.Agency{
		AgencyID:     "AG1",
		PasswordHash: "$2a$hash",
		Jurisdiction: jurisdiction,
	})

	assert.Equal(t, models.AgencyTypeJurisdiction, resp.Type)
	require.NotNil(t, resp.Jurisdiction)
	assert.Equal(t, "Polygon", resp.Jurisdiction.Type)
	assert.Equal(t, []string{}, resp.EventResponsibleFor)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "$2a$hash")
}
