package assessments

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func anxietyAnswers(values ...int) map[string]int {
	answers := make(map[string]int, len(values))
	for i, v := range values {
		answers[anxietyQuestions[i].ID] = v
	}
	return answers
}

func TestScoreUnknownAssessment(t *testing.T) {
	_, err := Score("sleep", map[string]int{}, testNow)
	if !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
	}
}

func TestScoreAnxietyBoundaries(t *testing.T) {
	cases := []struct {
		score int
		level string
		title string
	}{
		{0, LevelLow, "Minimal Anxiety"},
		{4, LevelLow, "Minimal Anxiety"},
		{5, LevelMild, "Mild Anxiety"},
		{9, LevelMild, "Mild Anxiety"},
		{10, LevelModerate, "Moderate Anxiety"},
		{14, LevelModerate, "Moderate Anxiety"},
		{15, LevelSevere, "Severe Anxiety"},
		{21, LevelSevere, "Severe Anxiety"},
	}

	for _, tc := range cases {
		// Spread the target sum over the first question(s)
		answers := map[string]int{"anxiety-1": tc.score}
		result, err := Score("anxiety", answers, testNow)
		if err != nil {
			t.Fatalf("score %d: %v", tc.score, err)
		}
		if result.Score != tc.score {
			t.Errorf("score %d: got total %d", tc.score, result.Score)
		}
		if result.Level != tc.level {
			t.Errorf("score %d: expected level %q, got %q", tc.score, tc.level, result.Level)
		}
		if result.Title != tc.title {
			t.Errorf("score %d: expected title %q, got %q", tc.score, tc.title, result.Title)
		}
	}
}

func TestScoreAnxietyAllMax(t *testing.T) {
	result, err := Score("anxiety", anxietyAnswers(3, 3, 3, 3, 3, 3, 3), testNow)
	if err != nil {
		t.Fatal(err)
	}

	if result.Score != 21 {
		t.Errorf("expected score 21, got %d", result.Score)
	}
	if result.MaxScore != 21 {
		t.Errorf("expected max score 21, got %d", result.MaxScore)
	}
	if result.Level != LevelSevere {
		t.Errorf("expected severe, got %q", result.Level)
	}
}

func TestScoreAnxietyEmptyAnswers(t *testing.T) {
	// Unanswered questions contribute 0
	result, err := Score("anxiety", map[string]int{}, testNow)
	if err != nil {
		t.Fatal(err)
	}

	if result.Score != 0 || result.Level != LevelLow {
		t.Errorf("expected score 0 / low, got %d / %q", result.Score, result.Level)
	}
}

func TestScoreDepressionBoundaries(t *testing.T) {
	for _, tc := range []struct {
		score int
		level string
	}{
		{4, LevelLow}, {5, LevelMild}, {14, LevelModerate}, {15, LevelSevere},
	} {
		result, err := Score("depression", map[string]int{"depression-1": tc.score}, testNow)
		if err != nil {
			t.Fatal(err)
		}
		if result.Level != tc.level {
			t.Errorf("score %d: expected %q, got %q", tc.score, tc.level, result.Level)
		}
	}
}

func TestScoreStressPercentBoundary(t *testing.T) {
	// Max score 24; 6 points is exactly 25%
	result, err := Score("stress", map[string]int{"stress-1": 4, "stress-2": 2}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if result.MaxScore != 24 {
		t.Fatalf("expected max score 24, got %d", result.MaxScore)
	}
	if result.Level != LevelLow || result.Title != "Low Stress" {
		t.Errorf("25%% should be low, got %q (%q)", result.Level, result.Title)
	}

	// 7 points is just above 25%
	result, err = Score("stress", map[string]int{"stress-1": 4, "stress-2": 3}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if result.Level != LevelMild || result.Title != "Moderate Stress" {
		t.Errorf("just above 25%% should be mild, got %q (%q)", result.Level, result.Title)
	}
}

func TestScoreStressUpperBands(t *testing.T) {
	// 18/24 = 75% -> moderate; 19/24 -> severe
	result, _ := Score("stress", map[string]int{"stress-1": 4, "stress-2": 4, "stress-3": 4, "stress-4": 4, "stress-5": 2}, testNow)
	if result.Score != 18 || result.Level != LevelModerate {
		t.Errorf("expected 18 -> moderate, got %d -> %q", result.Score, result.Level)
	}

	result, _ = Score("stress", map[string]int{"stress-1": 4, "stress-2": 4, "stress-3": 4, "stress-4": 4, "stress-5": 3}, testNow)
	if result.Score != 19 || result.Level != LevelSevere {
		t.Errorf("expected 19 -> severe, got %d -> %q", result.Score, result.Level)
	}
}

func TestScoreWellbeingInvertedPolarity(t *testing.T) {
	// Max score 26. 21/26 = 80.77% -> low concern, "High Well-being"
	result, err := Score("wellbeing", map[string]int{"wellbeing-1": 10, "wellbeing-2": 4, "wellbeing-3": 4, "wellbeing-4": 3}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if result.MaxScore != 26 {
		t.Fatalf("expected max score 26, got %d", result.MaxScore)
	}
	if result.Level != LevelLow || result.Title != "High Well-being" {
		t.Errorf("expected High Well-being, got %q (%q)", result.Level, result.Title)
	}

	// 20/26 = 76.9% -> "Moderate Well-being"
	result, _ = Score("wellbeing", map[string]int{"wellbeing-1": 10, "wellbeing-2": 4, "wellbeing-3": 4, "wellbeing-4": 2}, testNow)
	if result.Level != LevelMild || result.Title != "Moderate Well-being" {
		t.Errorf("expected Moderate Well-being, got %q (%q)", result.Level, result.Title)
	}

	// 10/26 = 38.5% -> "Low Well-being"
	result, _ = Score("wellbeing", map[string]int{"wellbeing-1": 10}, testNow)
	if result.Level != LevelSevere || result.Title != "Low Well-being" {
		t.Errorf("expected Low Well-being, got %q (%q)", result.Level, result.Title)
	}
}

func TestGradeWellbeingExactBoundaries(t *testing.T) {
	wellbeing, _ := FindAssessment("wellbeing")

	// Exactly 80% stays in the high well-being band
	b := wellbeing.grading.grade(4, 5)
	if b.Title != "High Well-being" {
		t.Errorf("80%% should be High Well-being, got %q", b.Title)
	}

	// Just below 80% drops to moderate
	b = wellbeing.grading.grade(799, 1000)
	if b.Title != "Moderate Well-being" {
		t.Errorf("79.9%% should be Moderate Well-being, got %q", b.Title)
	}

	// Exactly 60% and 40%
	b = wellbeing.grading.grade(3, 5)
	if b.Title != "Moderate Well-being" {
		t.Errorf("60%% should be Moderate Well-being, got %q", b.Title)
	}
	b = wellbeing.grading.grade(2, 5)
	if b.Title != "Lower Well-being" {
		t.Errorf("40%% should be Lower Well-being, got %q", b.Title)
	}
}

func TestCatalogMaxScores(t *testing.T) {
	expected := map[string]int{"anxiety": 21, "depression": 21, "stress": 24, "wellbeing": 26}
	for _, a := range Catalog {
		if a.MaxScore() != expected[a.ID] {
			t.Errorf("%s: expected max score %d, got %d", a.ID, expected[a.ID], a.MaxScore())
		}
	}
}
