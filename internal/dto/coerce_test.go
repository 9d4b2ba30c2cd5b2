package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutes_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Minutes
	}{
		{in: `{"duration": 60}`, want: 60},
		{in: `{"duration": "45"}`, want: 45},
		{in: `{"duration": " 30 "}`, want: 30},
		{in: `{"duration": 90.0}`, want: 90},
		{in: `{"duration": 1.2e2}`, want: 120},
		{in: `{"duration": "75.0"}`, want: 75},
		{in: `{"duration": null}`, want: 0},
		{in: `{"duration": ""}`, want: 0},
		{in: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var req CreateAppointmentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.in), &req))
			assert.Equal(t, tt.want, req.Duration)
		})
	}
}

func TestMinutes_UnmarshalJSONRejects(t *testing.T) {
	for _, in := range []string{
		`{"duration": "an hour"}`,
		`{"duration": true}`,
		`{"duration": [1]}`,
		`{"duration": 90.5}`,
		`{"duration": "0.25"}`,
		`{"duration": 1e300}`,
		`{"duration": "-1e19"}`,
		`{"duration": 99999999999999999999}`,
		`{"duration": "NaN"}`,
		`{"duration": "Inf"}`,
	} {
		var req CreateAppointmentRequest
		assert.Error(t, json.Unmarshal([]byte(in), &req), in)
	}
}

func TestUpdateClientRequest_Patch(t *testing.T) {
	var req UpdateClientRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email": "x"}`), &req))

	p := req.Patch()
	require.NotNil(t, p.Email)
	assert.Equal(t, "x", *p.Email)
	assert.Nil(t, p.Nome)
	assert.Nil(t, p.Cognome)
	assert.False(t, p.IsEmpty())
}
