package stats

import "NewsMoodBot/internal/domain"

// CountByLabel tallies predicted emotions over the fixed candidate set.
// Every candidate label is present in the result, zero or not. Items with
// the sentinel label, or any label outside the set, are not counted: the
// chart only visualizes the known categories.
func CountByLabel(items []domain.NewsItem) map[string]int {
	counts := make(map[string]int, len(domain.CandidateLabels))
	for _, label := range domain.CandidateLabels {
		counts[label] = 0
	}

	for _, item := range items {
		if _, known := counts[item.PredictedEmotion]; known {
			counts[item.PredictedEmotion]++
		}
	}

	return counts
}
