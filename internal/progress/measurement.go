package progress

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MeasurementType is a closed enumeration of tracked body metrics.
type MeasurementType string

const (
	TypeWeight   MeasurementType = "weight"
	TypeHeight   MeasurementType = "height"
	TypeChest    MeasurementType = "chest"
	TypeWaist    MeasurementType = "waist"
	TypeHip      MeasurementType = "hip"
	TypeArm      MeasurementType = "arm"
	TypeThigh    MeasurementType = "thigh"
	TypeNeck     MeasurementType = "neck"
	TypeShoulder MeasurementType = "shoulder"
)

func (mt MeasurementType) String() string {
	return string(mt)
}

func (mt MeasurementType) IsValid() bool {
	switch mt {
	case TypeWeight, TypeHeight, TypeChest, TypeWaist,
		TypeHip, TypeArm, TypeThigh, TypeNeck, TypeShoulder:
		return true
	default:
		return false
	}
}

// DefaultUnit is the display unit used when a record carries none.
func (mt MeasurementType) DefaultUnit() string {
	if mt == TypeWeight {
		return "kg"
	}
	return "cm"
}

// Measurement is one timestamped body-metric sample.
type Measurement struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"clientId,omitempty"`
	Type       MeasurementType `json:"type"`
	Value      float64         `json:"value"`
	Unit       string          `json:"unit,omitempty"`
	RecordedAt time.Time       `json:"recordedAt"`
	Notes      string          `json:"notes,omitempty"`
}

// DisplayUnit returns the record's own unit, or the per-type default.
func (m Measurement) DisplayUnit() string {
	if m.Unit != "" {
		return m.Unit
	}
	return m.Type.DefaultUnit()
}

// Valid reports whether the record can enter the working set.
func (m Measurement) Valid() bool {
	if !m.Type.IsValid() {
		return false
	}
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return false
	}
	return !m.RecordedAt.IsZero()
}

// Normalize validates and coerces a raw measurement-like object (a decoded
// JSON map) into a Measurement. Returns nil for anything that does not
// resolve to a valid record: unknown type, non-finite value, or a recordedAt
// that cannot be parsed. It never panics - malformed input degrades to nil.
func Normalize(raw map[string]any) *Measurement {
	if raw == nil {
		return nil
	}

	typeStr, ok := coerceString(raw["type"])
	if !ok {
		return nil
	}
	mt := MeasurementType(strings.ToLower(strings.TrimSpace(typeStr)))
	if !mt.IsValid() {
		return nil
	}

	value, ok := coerceFloat(raw["value"])
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	recordedAt, ok := coerceTime(raw["recordedAt"])
	if !ok {
		return nil
	}

	m := &Measurement{
		Type:       mt,
		Value:      value,
		RecordedAt: recordedAt,
	}
	if id, ok := coerceString(raw["id"]); ok {
		m.ID = id
	}
	if unit, ok := coerceString(raw["unit"]); ok {
		m.Unit = unit
	}
	if notes, ok := coerceString(raw["notes"]); ok {
		m.Notes = notes
	}

	return m
}

func coerceString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func coerceTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t, true
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// Groups maps a measurement type to its records, newest first.
type Groups map[MeasurementType][]Measurement

// Of returns the bucket for the given type. An absent bucket and an empty
// bucket are the same thing for consumers.
func (g Groups) Of(mt MeasurementType) []Measurement {
	if g == nil {
		return nil
	}
	return g[mt]
}

// Group partitions records by type. The partition is stable: relative order
// within every bucket follows the input order, so callers wanting
// latest-first buckets must sort the full list by recordedAt descending
// once, upstream.
func Group(records []Measurement) Groups {
	groups := make(Groups)
	for _, m := range records {
		groups[m.Type] = append(groups[m.Type], m)
	}
	return groups
}

// SortDescending orders records by recordedAt, newest first, in place.
func SortDescending(records []Measurement) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RecordedAt.After(records[j].RecordedAt)
	})
}
