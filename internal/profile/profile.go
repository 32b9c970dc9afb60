package profile

import (
	"strconv"
	"strings"
	"time"
)

// Snapshot is a client's profile as seen by the progress pipeline.
// Weight, target weight and height are optional - clients may not have
// filled them in yet.
type Snapshot struct {
	ClientID     string    `json:"clientId"`
	DisplayName  string    `json:"displayName"`
	Goal         string    `json:"goal"`
	Weight       *float64  `json:"weight,omitempty"`
	TargetWeight *float64  `json:"targetWeight,omitempty"`
	Height       *float64  `json:"height,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UpdateRequest carries profile fields as they arrive from the dashboards:
// numeric fields are strings, and an empty string clears the field. This is
// the validating parse boundary - bad numbers are an error here, never
// deeper down.
type UpdateRequest struct {
	DisplayName  string `json:"displayName"`
	Goal         string `json:"goal"`
	Weight       string `json:"weight"`
	TargetWeight string `json:"targetWeight"`
	Height       string `json:"height"`
}

func (r UpdateRequest) ToSnapshot(clientID string) (*Snapshot, error) {
	weight, err := parseOptionalFloat(r.Weight)
	if err != nil {
		return nil, err
	}
	targetWeight, err := parseOptionalFloat(r.TargetWeight)
	if err != nil {
		return nil, err
	}
	height, err := parseOptionalFloat(r.Height)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		ClientID:     clientID,
		DisplayName:  r.DisplayName,
		Goal:         r.Goal,
		Weight:       weight,
		TargetWeight: targetWeight,
		Height:       height,
	}, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
