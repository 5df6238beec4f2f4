package domain

import "time"

const unknownDescription = "Unknown"

// MatchBand classifies a similarity score.
type MatchBand string

// Match bands.
const (
	MatchHigh     MatchBand = "high"
	MatchModerate MatchBand = "moderate"
	MatchLow      MatchBand = "low"
	MatchUnknown  MatchBand = "unknown"
)

// Score thresholds.
const (
	// DefaultHighMatchThreshold is the score at or above which a match is High.
	DefaultHighMatchThreshold = 80

	// MinHighMatchThreshold is the lowest configurable High threshold and
	// also the floor of the Moderate band.
	MinHighMatchThreshold = 50

	// MaxScore is the highest valid similarity score.
	MaxScore = 100
)

// String returns the string representation.
func (b MatchBand) String() string {
	return string(b)
}

// Description returns a human-readable description of the band.
func (b MatchBand) Description() string {
	switch b {
	case MatchHigh:
		return "High Match"
	case MatchModerate:
		return "Moderate Match"
	case MatchLow:
		return "Low Match"
	default:
		return unknownDescription
	}
}

// ClassifyScore bands a 0..100 score against the High threshold.
func ClassifyScore(score, threshold int) MatchBand {
	switch {
	case score < 0 || score > MaxScore:
		return MatchUnknown
	case score >= threshold:
		return MatchHigh
	case score >= MinHighMatchThreshold:
		return MatchModerate
	default:
		return MatchLow
	}
}

// ComparisonPrompt is the text handed to a language model for one level pair.
type ComparisonPrompt struct {
	PrimaryLevel   string `json:"primary_level"`
	SecondaryLevel string `json:"secondary_level"`

	// System is the optional system prompt.
	System string `json:"system,omitempty"`

	// User is the rendered comparison request.
	User string `json:"user"`
}

// ScoreResult is a similarity score parsed from a model response.
type ScoreResult struct {
	Score int       `json:"score"`
	Found bool      `json:"found"`
	Band  MatchBand `json:"band"`
}

// ComparisonRecord is one scored comparison kept in a session history.
type ComparisonRecord struct {
	PrimaryLevel   string      `json:"primary_level"`
	SecondaryLevel string      `json:"secondary_level"`
	Result         ScoreResult `json:"result"`
	Response       string      `json:"response"`
	Timestamp      time.Time   `json:"timestamp"`
}
