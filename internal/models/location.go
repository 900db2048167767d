package models

import (
	"encoding/json"
	"fmt"
)

// LocationSource tags where a LocationState came from.
type LocationSource int

const (
	SourceFetched LocationSource = iota
	SourceManual
)

// Outranks reports whether a state from s may replace a state from other.
// A manual choice is never replaced by an automatic fetch.
func (s LocationSource) Outranks(other LocationSource) bool {
	return s >= other
}

func (s LocationSource) String() string {
	switch s {
	case SourceManual:
		return "manual"
	default:
		return "fetched"
	}
}

func (s LocationSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LocationSource) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v {
	case "manual":
		*s = SourceManual
	case "fetched":
		*s = SourceFetched
	default:
		return fmt.Errorf("unknown location source %q", v)
	}
	return nil
}

// LocationInfo is a normalized geolocation lookup result.
type LocationInfo struct {
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

type LocationState struct {
	Source      LocationSource `json:"source"`
	Country     *string        `json:"country"`
	CountryCode *string        `json:"countryCode"`
	City        *string        `json:"city"`
}

// NewLocationState builds a state from a lookup result, leaving empty fields nil.
func NewLocationState(source LocationSource, info LocationInfo) LocationState {
	return LocationState{
		Source:      source,
		Country:     optional(info.Country),
		CountryCode: optional(info.CountryCode),
		City:        optional(info.City),
	}
}

func (s LocationState) Code() string {
	if s.CountryCode == nil {
		return ""
	}
	return *s.CountryCode
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
