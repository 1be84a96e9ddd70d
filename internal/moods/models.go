package moods

import (
	"time"

	"github.com/google/uuid"
)

// Mood keys
const (
	MoodHappy    = "happy"
	MoodCalm     = "calm"
	MoodAnxious  = "anxious"
	MoodSad      = "sad"
	MoodExcited  = "excited"
	MoodStressed = "stressed"
	MoodGrateful = "grateful"
	MoodConfused = "confused"
)

// Valid mood keys
var ValidMoods = []string{
	MoodHappy, MoodCalm, MoodAnxious, MoodSad,
	MoodExcited, MoodStressed, MoodGrateful, MoodConfused,
}

// MoodLabels maps mood keys to display labels
var MoodLabels = map[string]string{
	MoodHappy:    "Happy",
	MoodCalm:     "Calm",
	MoodAnxious:  "Anxious",
	MoodSad:      "Sad",
	MoodExcited:  "Excited",
	MoodStressed: "Stressed",
	MoodGrateful: "Grateful",
	MoodConfused: "Confused",
}

// Intensity range
const (
	MinIntensity = 1
	MaxIntensity = 5
)

// IntensityLabels maps intensity values to display labels
var IntensityLabels = map[int]string{
	1: "Very Low",
	2: "Low",
	3: "Moderate",
	4: "Good",
	5: "Excellent",
}

// Entry represents a mood entry (one per calendar day)
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Mood      string    `json:"mood"`
	Intensity int       `json:"intensity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertEntryRequest is the request body for recording a mood
type UpsertEntryRequest struct {
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	Intensity int    `json:"intensity"`
	Note      string `json:"note,omitempty"`
}

// EntriesResponse is the response for listing mood entries
type EntriesResponse struct {
	Entries []Entry `json:"entries"`
}

// TrendPoint is a single point in a weekly/monthly trend
type TrendPoint struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Mood      string `json:"mood"`
	Intensity int    `json:"intensity"`
}

// Stats is the aggregated mood statistics
type Stats struct {
	TotalEntries     int            `json:"total_entries"`
	AverageIntensity float64        `json:"average_intensity"`
	MoodDistribution map[string]int `json:"mood_distribution"`
	MostCommonMood   string         `json:"most_common_mood"`
	WeeklyTrend      []TrendPoint   `json:"weekly_trend"`
	MonthlyTrend     []TrendPoint   `json:"monthly_trend"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
