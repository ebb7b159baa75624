package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshal(t *testing.T) {
	type payload struct {
		Tool  string  `json:"tool"`
		Value float64 `json:"value"`
	}

	data, err := Marshal(payload{Tool: "calculate", Value: 14})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tool":"calculate","value":14}`, string(data))

	var got payload
	require.NoError(t, Unmarshal(data, &got))
	assert.Equal(t, "calculate", got.Tool)
	assert.Equal(t, 14.0, got.Value)
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(map[string]int{"count": 3}, "  ")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"count\": 3")
}

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(`{"a":1}`)))
	assert.True(t, Valid([]byte(`[1,2,3]`)))
	assert.False(t, Valid([]byte(`{"a":`)))
	assert.False(t, Valid([]byte(`not json`)))
}
