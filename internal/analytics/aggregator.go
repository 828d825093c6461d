package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/marketlens/marketlens/internal/models"
)

// GroupedSums maps a group key (month, week, area or cuisine label) to the
// raw per-channel totals for that key. Every key carries all five channels,
// zero-valued when the channel had no activity.
type GroupedSums map[string]map[models.Channel]*models.ChannelSums

// Aggregate sums records per channel under the given dimension. Records
// whose channel label is unrecognized, or whose grouping field is empty,
// are skipped; bad data never breaks a chart.
func Aggregate(records []models.SalesRecord, dimension string) GroupedSums {
	grouped := make(GroupedSums)
	for _, r := range records {
		ch, ok := models.ParseChannel(r.Channel)
		if !ok {
			continue
		}
		key := groupKey(r, dimension)
		if key == "" {
			continue
		}
		sums, ok := grouped[key]
		if !ok {
			sums = newChannelSums()
			grouped[key] = sums
		}
		sums[ch].Add(r)
	}
	return grouped
}

// AggregateByChannel collapses all records into one ChannelSums per channel,
// ignoring every other dimension.
func AggregateByChannel(records []models.SalesRecord) map[models.Channel]*models.ChannelSums {
	sums := newChannelSums()
	for _, r := range records {
		ch, ok := models.ParseChannel(r.Channel)
		if !ok {
			continue
		}
		sums[ch].Add(r)
	}
	return sums
}

func newChannelSums() map[models.Channel]*models.ChannelSums {
	sums := make(map[models.Channel]*models.ChannelSums, len(models.AllChannels))
	for _, ch := range models.AllChannels {
		sums[ch] = &models.ChannelSums{}
	}
	return sums
}

func groupKey(r models.SalesRecord, dimension string) string {
	switch dimension {
	case models.DimensionMonth, models.DimensionWeek:
		return r.Period
	case models.DimensionArea:
		return strings.TrimSpace(r.Area)
	case models.DimensionCuisine:
		return strings.TrimSpace(r.Cuisine)
	case models.DimensionChannel:
		// Callers already dropped unparseable channels; key by the canonical
		// name so label casing never splits a group.
		if ch, ok := models.ParseChannel(r.Channel); ok {
			return ch.String()
		}
		return ""
	default:
		return ""
	}
}

// WeekKey builds a compound year+week key. The week component is zero-padded
// so that lexical sort order matches chronological order; trend charts sort
// keys, never rely on insertion order.
func WeekKey(year, week int) string {
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// SortedKeys returns the group keys in ascending lexical order, which for
// canonical month and week keys is chronological order.
func SortedKeys(grouped GroupedSums) []string {
	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
