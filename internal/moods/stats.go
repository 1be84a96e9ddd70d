package moods

import (
	"sort"
	"time"
)

// ComputeStats aggregates mood entries into summary statistics.
// now определяет границы трендов (7 и 30 дней назад включительно).
func ComputeStats(entries []Entry, now time.Time) Stats {
	stats := Stats{
		MoodDistribution: map[string]int{},
		WeeklyTrend:      []TrendPoint{},
		MonthlyTrend:     []TrendPoint{},
	}

	stats.TotalEntries = len(entries)
	if len(entries) == 0 {
		return stats
	}

	sum := 0
	seenOrder := make([]string, 0, len(ValidMoods))
	for _, e := range entries {
		sum += e.Intensity
		if _, seen := stats.MoodDistribution[e.Mood]; !seen {
			seenOrder = append(seenOrder, e.Mood)
		}
		stats.MoodDistribution[e.Mood]++
	}

	// Exact mean, formatting is up to callers
	stats.AverageIntensity = float64(sum) / float64(len(entries))

	// Ties resolve to the mood seen first in the scan
	best := 0
	for _, mood := range seenOrder {
		if count := stats.MoodDistribution[mood]; count > best {
			best = count
			stats.MostCommonMood = mood
		}
	}

	weekCutoff := now.AddDate(0, 0, -7).Format("2006-01-02")
	monthCutoff := now.AddDate(0, 0, -30).Format("2006-01-02")

	for _, e := range entries {
		point := TrendPoint{Date: e.Date, Mood: e.Mood, Intensity: e.Intensity}
		if e.Date >= weekCutoff {
			stats.WeeklyTrend = append(stats.WeeklyTrend, point)
		}
		if e.Date >= monthCutoff {
			stats.MonthlyTrend = append(stats.MonthlyTrend, point)
		}
	}

	sortTrendDesc(stats.WeeklyTrend)
	sortTrendDesc(stats.MonthlyTrend)

	return stats
}

// sortTrendDesc sorts trend points by date, newest first.
// Входной порядок не имеет значения, сортируем всегда.
func sortTrendDesc(points []TrendPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date > points[j].Date
	})
}
