package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexiblePagesUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{name: "number", payload: `{"pages": 42}`, want: "42"},
		{name: "string", payload: `{"pages": "123-145"}`, want: "123-145"},
		{name: "null", payload: `{"pages": null}`, want: ""},
		{name: "absent", payload: `{}`, want: ""},
		{name: "float kept verbatim", payload: `{"pages": 12.5}`, want: "12.5"},
		{name: "boolean rejected", payload: `{"pages": true}`, wantErr: true},
		{name: "array rejected", payload: `{"pages": [1, 2]}`, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var body struct {
				Pages FlexiblePages `json:"pages"`
			}
			err := json.Unmarshal([]byte(tc.payload), &body)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(body.Pages))
		})
	}
}
