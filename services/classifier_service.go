package services

import "strings"

// Sentiment is one of the three fixed labels the classifier can produce.
type Sentiment string

const (
	SentimentCritical Sentiment = "Critical 🔴"
	SentimentGrowth   Sentiment = "Growth 🟢"
	SentimentNeutral  Sentiment = "Neutral ⚪"
)

// Keyword sets checked in priority order; critical wins over growth.
var (
	criticalKeywords = []string{"urgent", "fail", "error"}
	growthKeywords   = []string{"learn", "buy"}
)

type ClassifierServiceInterface interface {
	Classify(text string) Sentiment
}

type ClassifierService struct{}

// Classify maps free text to a sentiment label by case-insensitive
// substring matching. Deterministic and total over all inputs.
func (s *ClassifierService) Classify(text string) Sentiment {
	lowered := strings.ToLower(text)

	if containsAny(lowered, criticalKeywords) {
		return SentimentCritical
	}
	if containsAny(lowered, growthKeywords) {
		return SentimentGrowth
	}
	return SentimentNeutral
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

var ClassifierServiceInstance ClassifierServiceInterface = &ClassifierService{}
