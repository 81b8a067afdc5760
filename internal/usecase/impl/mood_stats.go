package impl

import (
	"slices"

	"wellness/internal/domain/entity"
	"wellness/internal/util"
)

// Trend windows: the newest trendWindow entries against the trendWindow before them.
const (
	trendWindow    = 7
	trendThreshold = 0.3
)

// computeMoodStats aggregates entries that already passed the date filter.
func computeMoodStats(entries []*entity.MoodEntry) *entity.MoodStats {
	stats := &entity.MoodStats{
		TotalEntries:     len(entries),
		MoodDistribution: make(map[entity.MoodType]int, len(entity.MoodTypes())),
		Trend:            entity.TrendStable,
	}
	for _, info := range entity.MoodTypes() {
		stats.MoodDistribution[info.Name] = 0
	}

	if len(entries) == 0 {
		return stats
	}

	sorted := sortNewestFirst(entries)

	total := 0
	for _, entry := range sorted {
		total += entry.Level
		if _, ok := stats.MoodDistribution[entry.MoodType]; ok {
			stats.MoodDistribution[entry.MoodType]++
		}
	}

	stats.AverageMood = util.Round2(float64(total) / float64(len(sorted)))
	stats.LastEntry = sorted[0]
	stats.Trend = classifyTrend(sorted)

	return stats
}

// classifyTrend expects entries sorted newest first.
func classifyTrend(sorted []*entity.MoodEntry) entity.Trend {
	if len(sorted) < trendWindow {
		return entity.TrendStable
	}

	recent := sorted[:trendWindow]
	previous := sorted[trendWindow:min(len(sorted), 2*trendWindow)]
	if len(previous) == 0 {
		return entity.TrendStable
	}

	diff := averageLevel(recent) - averageLevel(previous)
	switch {
	case diff > trendThreshold:
		return entity.TrendImproving
	case diff < -trendThreshold:
		return entity.TrendDeclining
	default:
		return entity.TrendStable
	}
}

func averageLevel(entries []*entity.MoodEntry) float64 {
	total := 0
	for _, entry := range entries {
		total += entry.Level
	}

	return float64(total) / float64(len(entries))
}

// sortNewestFirst returns a copy ordered by RegistrationDate descending. Ties fall
// back to CreatedAt, then ID, so the order is deterministic.
func sortNewestFirst(entries []*entity.MoodEntry) []*entity.MoodEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b *entity.MoodEntry) int {
		if c := b.RegistrationDate.Compare(a.RegistrationDate); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return compareStrings(b.ID, a.ID)
	})

	return sorted
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
