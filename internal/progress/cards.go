package progress

import (
	"fmt"
	"time"

	"github.com/peakform/peakformcom/internal/profile"
)

// Trend classifies the direction of a computed delta. Polarity is a product
// decision: the platform is weight-loss oriented, so "down" is the
// favorable direction for every weight delta.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// MetricCard is a UI-ready summary value derived from the weight series.
// Cards are recomputed on every snapshot and never persisted.
type MetricCard struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
	Trend  Trend  `json:"trend"`
	Helper string `json:"helper,omitempty"`
}

// WeightSummary holds the reference points and deltas computed from a
// descending weight series. The message composer consumes these exact
// values - deltas are computed once here and threaded through, so cards
// and messages can never disagree on rounding.
type WeightSummary struct {
	Latest   *Measurement
	Previous *Measurement
	First    *Measurement

	RecentDelta *float64
	TotalDelta  *float64
	TargetDiff  *float64

	TargetWeight *float64
	Unit         string
}

// SummarizeWeight extracts latest/previous/first reference points and the
// derived deltas from a weight series sorted newest-first. Every field is
// optional - missing data leaves the corresponding fields nil.
func SummarizeWeight(series []Measurement, snapshot profile.Snapshot) WeightSummary {
	sum := WeightSummary{
		TargetWeight: snapshot.TargetWeight,
		Unit:         TypeWeight.DefaultUnit(),
	}

	if len(series) > 0 {
		sum.Latest = &series[0]
		sum.Unit = series[0].DisplayUnit()
	}
	if len(series) > 1 {
		sum.Previous = &series[1]
		sum.First = &series[len(series)-1]
	}

	if sum.Latest != nil && sum.Previous != nil {
		d := sum.Latest.Value - sum.Previous.Value
		sum.RecentDelta = &d
	}

	// total change needs two distinct records
	if sum.Latest != nil && sum.First != nil {
		d := sum.Latest.Value - sum.First.Value
		sum.TotalDelta = &d
	}

	// reference weight: latest measurement, else the profile weight
	var reference *float64
	if sum.Latest != nil {
		reference = &sum.Latest.Value
	} else if snapshot.Weight != nil {
		reference = snapshot.Weight
	}
	if reference != nil && sum.TargetWeight != nil {
		d := *reference - *sum.TargetWeight
		sum.TargetDiff = &d
	}

	return sum
}

// DeriveMetrics computes the summary metric cards for a weight series
// sorted newest-first. Every card is independently gated on data
// availability; with no usable data at all the result is empty.
func DeriveMetrics(series []Measurement, snapshot profile.Snapshot) []MetricCard {
	sum := SummarizeWeight(series, snapshot)
	cards := make([]MetricCard, 0, 4)

	switch {
	case sum.Latest != nil:
		card := MetricCard{
			Key:    "current-weight",
			Label:  "Current Weight",
			Value:  FormatValue(sum.Latest.Value, sum.Unit),
			Trend:  TrendNeutral,
			Helper: fmt.Sprintf("Measured on %s", FormatDate(sum.Latest.RecordedAt)),
		}
		if sum.RecentDelta != nil {
			card.Change = FormatDelta(*sum.RecentDelta, sum.Unit)
		}
		cards = append(cards, card)
	case snapshot.Weight != nil:
		cards = append(cards, MetricCard{
			Key:    "current-weight",
			Label:  "Current Weight",
			Value:  FormatValue(*snapshot.Weight, sum.Unit),
			Trend:  TrendNeutral,
			Helper: "From profile, no measurement logged yet",
		})
	}

	if sum.RecentDelta != nil {
		cards = append(cards, MetricCard{
			Key:    "recent-change",
			Label:  "Since Last Measurement",
			Value:  FormatDelta(*sum.RecentDelta, sum.Unit),
			Trend:  deltaTrend(*sum.RecentDelta),
			Helper: fmt.Sprintf("Compared to %s", FormatDate(sum.Previous.RecordedAt)),
		})
	}

	if sum.TargetDiff != nil {
		cards = append(cards, MetricCard{
			Key:    "target-gap",
			Label:  "Distance to Target",
			Value:  FormatDelta(*sum.TargetDiff, sum.Unit),
			Trend:  deltaTrend(*sum.TargetDiff),
			Helper: fmt.Sprintf("Target weight %s", FormatValue(*sum.TargetWeight, sum.Unit)),
		})
	}

	if sum.TotalDelta != nil {
		cards = append(cards, MetricCard{
			Key:    "total-change",
			Label:  "Total Change",
			Value:  FormatDelta(*sum.TotalDelta, sum.Unit),
			Trend:  deltaTrend(*sum.TotalDelta),
			Helper: fmt.Sprintf("Since first measurement on %s", FormatDate(sum.First.RecordedAt)),
		})
	}

	return cards
}

// deltaTrend: down (favorable) for zero or negative deltas, up otherwise.
func deltaTrend(delta float64) Trend {
	if delta <= 0 {
		return TrendDown
	}
	return TrendUp
}

// FormatValue renders a value with one decimal and a unit suffix,
// e.g. "80.0 kg".
func FormatValue(v float64, unit string) string {
	return fmt.Sprintf("%.1f %s", v, unit)
}

// FormatDelta renders a signed change with one decimal and a unit suffix,
// e.g. "+1.5 kg" or "-2.0 kg". The plus sign is explicit for gains, and
// negative zero is normalized away.
func FormatDelta(v float64, unit string) string {
	s := fmt.Sprintf("%.1f", v)
	if s == "-0.0" {
		s = "0.0"
	}
	if v > 0 {
		s = "+" + s
	}
	return fmt.Sprintf("%s %s", s, unit)
}

// FormatDate renders a timestamp the way the dashboards show it.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
