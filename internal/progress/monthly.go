package progress

// MonthlyStat summarizes one calendar month of the weight sub-series.
type MonthlyStat struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Count  int     `json:"count"`
	Change float64 `json:"change"`
}

// AggregateMonthly buckets the weight series by calendar month. The input
// arrives newest-first (the storage order), so the walk below explicitly
// runs back-to-front to process records in ascending chronological order.
// Buckets are emitted in the order first encountered.
func AggregateMonthly(series []Measurement) []MonthlyStat {
	stats := make([]MonthlyStat, 0)
	keyToIndex := make(map[string]int)

	for i := len(series) - 1; i >= 0; i-- {
		m := series[i]
		if m.RecordedAt.IsZero() {
			continue
		}

		key := m.RecordedAt.Format("2006-01")
		idx, seen := keyToIndex[key]
		if !seen {
			keyToIndex[key] = len(stats)
			stats = append(stats, MonthlyStat{
				Key:   key,
				Label: m.RecordedAt.Format("Jan 2006"),
				Start: m.Value,
				End:   m.Value,
				Count: 1,
			})
			continue
		}

		stats[idx].End = m.Value
		stats[idx].Count++
	}

	for i := range stats {
		stats[i].Change = stats[i].End - stats[i].Start
	}

	return stats
}
