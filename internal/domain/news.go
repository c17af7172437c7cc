package domain

import "time"

// NewsItem is a single headline discovered on the news index for a day.
// Identity within one day's batch is the URL.
type NewsItem struct {
	Headline string
	URL      string
	// Date is set only for range queries; single-day batches leave it nil.
	Date *time.Time
	// Snippet is the first sentence of the article body, used as
	// classifier context alongside the headline.
	Snippet      string
	CombinedText string
	// PredictedEmotion is one of CandidateLabels, or LabelUndetermined
	// when classification failed for this item.
	PredictedEmotion string
}

// CandidateLabels is the closed set of emotion categories the zero-shot
// classifier chooses from. Order is significant: it drives the category
// keyboard and the chart axis.
var CandidateLabels = []string{
	"агрессия",
	"тревожность",
	"сарказм",
	"позитив",
	"нейтральное состояние",
}

// LabelUndetermined marks items whose classification failed.
const LabelUndetermined = "не определено"

// IsCandidateLabel reports whether label belongs to the fixed candidate set.
// The sentinel is deliberately not a candidate.
func IsCandidateLabel(label string) bool {
	for _, l := range CandidateLabels {
		if l == label {
			return true
		}
	}
	return false
}
