package progress

import (
	"fmt"
	"math"
)

// Achievement is a rule-based milestone indicator derived from the weight
// series. Earned badges carry the date they were earned; in-progress ones
// carry a 0-100 progress percentage instead.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconRef     string `json:"iconRef"`
	Earned      bool   `json:"earned"`
	Date        string `json:"date,omitempty"`
	Progress    *int   `json:"progress,omitempty"`
}

const (
	// trendDeadZone keeps rounding noise from producing a trend badge.
	trendDeadZone = 0.1
	// nearTargetPct treats clients this close to the target as arrived.
	nearTargetPct = 99.0
)

// EvaluateAchievements maps the weight series (sorted newest-first) and the
// optional target weight to the fixed set of badges. Rules are independent;
// every branch degrades to omission, and the result is never empty - a
// fallback badge covers the no-data case.
func EvaluateAchievements(series []Measurement, targetWeight *float64) []Achievement {
	achievements := make([]Achievement, 0, 3)

	var latest, first *Measurement
	if len(series) > 0 {
		latest = &series[0]
		first = &series[len(series)-1]
	}

	if latest != nil {
		achievements = append(achievements, Achievement{
			ID:      "latest-entry",
			Title:   "Consistent Tracking",
			IconRef: "scale",
			Description: fmt.Sprintf(
				"Logged %s on %s",
				FormatValue(latest.Value, latest.DisplayUnit()),
				FormatDate(latest.RecordedAt),
			),
			Earned: true,
			Date:   FormatDate(latest.RecordedAt),
		})
	}

	// positive delta means weight went down
	if latest != nil && first != nil {
		delta := first.Value - latest.Value
		if math.Abs(delta) >= trendDeadZone {
			isLoss := delta > 0
			badge := Achievement{
				ID:     "weight-trend",
				Earned: true,
				Date:   FormatDate(latest.RecordedAt),
			}
			if isLoss {
				badge.Title = "Losing Weight"
				badge.IconRef = "trending-down"
				badge.Description = fmt.Sprintf(
					"%s down since %s",
					FormatValue(delta, latest.DisplayUnit()),
					FormatDate(first.RecordedAt),
				)
			} else {
				badge.Title = "Gaining Weight"
				badge.IconRef = "trending-up"
				badge.Description = fmt.Sprintf(
					"%s up since %s",
					FormatValue(-delta, latest.DisplayUnit()),
					FormatDate(first.RecordedAt),
				)
			}
			achievements = append(achievements, badge)
		}
	}

	if targetWeight != nil && latest != nil && first != nil {
		achievements = append(achievements, targetBadge(*targetWeight, first, latest))
	}

	if len(achievements) == 0 {
		achievements = append(achievements, Achievement{
			ID:          "first-steps",
			Title:       "First Steps",
			Description: "Add your first weight measurement to start earning badges",
			IconRef:     "sprout",
			Earned:      false,
		})
	}

	return achievements
}

func targetBadge(target float64, first, latest *Measurement) Achievement {
	totalDistance := math.Abs(target - first.Value)
	remainingDistance := math.Abs(target - latest.Value)

	progress := 100.0
	if totalDistance != 0 {
		progress = clamp((totalDistance-remainingDistance)/totalDistance*100, 0, 100)
	}

	// crossing condition: latest has reached or passed the target in the
	// direction implied by the initial gap
	crossed := false
	if first.Value >= target {
		crossed = latest.Value <= target
	} else {
		crossed = latest.Value >= target
	}

	badge := Achievement{
		ID:      "target-weight",
		Title:   "Target Weight",
		IconRef: "target",
	}

	if crossed || progress >= nearTargetPct {
		badge.Earned = true
		badge.Date = FormatDate(latest.RecordedAt)
		badge.Description = fmt.Sprintf(
			"Reached the target of %s",
			FormatValue(target, latest.DisplayUnit()),
		)
		return badge
	}

	rounded := int(math.Round(progress))
	badge.Progress = &rounded
	badge.Description = fmt.Sprintf(
		"%d%% of the way to %s",
		rounded,
		FormatValue(target, latest.DisplayUnit()),
	)
	return badge
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
