package progress

import "fmt"

// Tone classifies a motivational message for the progress page.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
)

type Message struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tone        Tone   `json:"tone"`
}

// ComposeMessages maps the already-computed weight deltas to short
// motivational blurbs, one per available signal. The summary's deltas are
// used as-is - recomputing them here could drift from the metric cards.
// With no signal at all, a single "get started" message is returned, so
// the list is never empty.
func ComposeMessages(sum WeightSummary) []Message {
	messages := make([]Message, 0, 3)

	if sum.RecentDelta != nil {
		d := *sum.RecentDelta
		msg := Message{ID: "recent-change"}
		switch {
		case d < 0:
			msg.Title = "Keep it up!"
			msg.Description = fmt.Sprintf("%s since your previous measurement.", FormatDelta(d, sum.Unit))
			msg.Tone = ToneSuccess
		case d == 0:
			msg.Title = "Holding steady"
			msg.Description = "No change since your previous measurement."
			msg.Tone = ToneInfo
		default:
			msg.Title = "Small bump"
			msg.Description = fmt.Sprintf("%s since your previous measurement. One data point is not a trend.", FormatDelta(d, sum.Unit))
			msg.Tone = ToneInfo
		}
		messages = append(messages, msg)
	}

	if sum.TotalDelta != nil {
		d := *sum.TotalDelta
		msg := Message{ID: "total-change"}
		switch {
		case d < 0:
			msg.Title = "Look how far you've come"
			msg.Description = fmt.Sprintf("%s in total since your first measurement.", FormatDelta(d, sum.Unit))
			msg.Tone = ToneSuccess
		case d == 0:
			msg.Title = "Back where you started"
			msg.Description = "Your weight matches your very first measurement."
			msg.Tone = ToneInfo
		default:
			msg.Title = "Total change"
			msg.Description = fmt.Sprintf("%s since your first measurement.", FormatDelta(d, sum.Unit))
			msg.Tone = ToneInfo
		}
		messages = append(messages, msg)
	}

	if sum.TargetDiff != nil && sum.TargetWeight != nil {
		d := *sum.TargetDiff
		msg := Message{ID: "target-gap"}
		if d <= 0 {
			msg.Title = "Target reached"
			msg.Description = fmt.Sprintf("You are at or below your target of %s.", FormatValue(*sum.TargetWeight, sum.Unit))
			msg.Tone = ToneSuccess
		} else {
			msg.Title = "Almost there"
			msg.Description = fmt.Sprintf("%s above your target of %s.", FormatValue(d, sum.Unit), FormatValue(*sum.TargetWeight, sum.Unit))
			msg.Tone = ToneWarning
		}
		messages = append(messages, msg)
	}

	if len(messages) == 0 {
		messages = append(messages, Message{
			ID:          "get-started",
			Title:       "Let's get started",
			Description: "Add your first measurement to see your progress here.",
			Tone:        ToneInfo,
		})
	}

	return messages
}
