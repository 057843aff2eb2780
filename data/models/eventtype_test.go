package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventType(t *testing.T) {
	var tests = []struct {
		input       string
		expected    EventType
		expectError bool
	}{
		{"Music", Music, false},
		{"music", Music, false},
		{"TOUR", Tour, false},
		{"Performing", Performing, false},
		{"Concert", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			et, err := ParseEventType(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, et)
			}
		})
	}
}

func TestEventTypeScan(t *testing.T) {
	var et EventType
	assert.NoError(t, et.Scan("Games"))
	assert.Equal(t, Games, et)

	assert.Error(t, et.Scan("Karaoke"))
	assert.Error(t, et.Scan(42))
}

func TestEventTypeJSON(t *testing.T) {
	b, err := json.Marshal(Movies)
	assert.NoError(t, err)
	assert.Equal(t, `"Movies"`, string(b))

	var et EventType
	assert.NoError(t, json.Unmarshal([]byte(`"movies"`), &et))
	assert.Equal(t, Movies, et)

	assert.Error(t, json.Unmarshal([]byte(`"Circus"`), &et))
}
