package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateJSONFormat(t *testing.T) {
	d := NewDate(2024, time.December, 25)

	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-12-25"`, string(b))

	var parsed Date
	assert.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, d.Time, parsed.Time)

	// out-of-range calendar values must not slip through
	assert.Error(t, json.Unmarshal([]byte(`"2024-13-40"`), &parsed))
}

func TestDateTimeJSONFormat(t *testing.T) {
	var dt DateTime
	assert.NoError(t, json.Unmarshal([]byte(`"2024-12-25 19:30:00"`), &dt))
	assert.Equal(t, time.Date(2024, time.December, 25, 19, 30, 0, 0, time.UTC), dt.Time)

	b, err := json.Marshal(dt)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-12-25 19:30:00"`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`"2024-12-25T19:30:00Z"`), &dt))
}
