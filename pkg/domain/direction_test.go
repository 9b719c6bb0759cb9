package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Direction
		wantErr bool
	}{
		{in: "RIGHT", want: domain.Right},
		{in: "LEFT", want: domain.Left},
		{in: "right", wantErr: true},
		{in: "", wantErr: true},
		{in: "LEFT)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseDirection(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirection_Delta(t *testing.T) {
	assert.Equal(t, 1, domain.Right.Delta())
	assert.Equal(t, -1, domain.Left.Delta())
}

func TestTransition_JSONUsesKeywords(t *testing.T) {
	data, err := json.Marshal(domain.Transition{Next: 1, Write: 0, Move: domain.Left})
	require.NoError(t, err)
	assert.JSONEq(t, `{"next":1,"write":0,"move":"LEFT"}`, string(data))

	var back domain.Transition
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, domain.Left, back.Move)
}
