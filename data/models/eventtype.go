package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// EventType is a closed enumeration stored as text. The database never sees a
// value outside this set; an unrecognized textual value fails to parse.
type EventType string

const (
	Music      EventType = "Music"
	Games      EventType = "Games"
	Performing EventType = "Performing"
	Movies     EventType = "Movies"
	Tour       EventType = "Tour"
)

var eventTypes = map[string]EventType{
	"music":      Music,
	"games":      Games,
	"performing": Performing,
	"movies":     Movies,
	"tour":       Tour,
}

// ParseEventType is case-insensitive on input but always yields the canonical
// capitalized form.
func ParseEventType(s string) (EventType, error) {
	if et, ok := eventTypes[strings.ToLower(s)]; ok {
		return et, nil
	}
	return "", fmt.Errorf("unrecognized event type: %q", s)
}

func (et EventType) Value() (driver.Value, error) {
	if _, err := ParseEventType(string(et)); err != nil {
		return nil, err
	}
	return string(et), nil
}

func (et *EventType) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into EventType", src)
	}

	parsed, err := ParseEventType(s)
	if err != nil {
		return err
	}
	*et = parsed
	return nil
}

func (et EventType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(et))
}

func (et *EventType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseEventType(s)
	if err != nil {
		return err
	}
	*et = parsed
	return nil
}
