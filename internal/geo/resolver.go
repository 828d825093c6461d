package geo

import (
	"regexp"
	"sort"
	"strings"

	"github.com/marketlens/marketlens/internal/models"
)

// The resolver matches messy, human-entered area strings against the
// reference table through a fixed cascade: exact, normalized, prefix,
// substring, then a deterministic city-centroid fallback. Earlier rules
// always win over later ones.

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// normalizedTable holds the reference areas keyed by normalized name, and
// normalizedKeys the same keys in sorted order so that prefix and substring
// scans visit candidates deterministically.
var (
	normalizedTable map[string]models.Location
	normalizedKeys  []string
)

func init() {
	normalizedTable = make(map[string]models.Location, len(areaCoordinates))
	for name, loc := range areaCoordinates {
		key := Normalize(name)
		if _, exists := normalizedTable[key]; !exists {
			normalizedTable[key] = loc
		}
	}
	normalizedKeys = make([]string, 0, len(normalizedTable))
	for key := range normalizedTable {
		normalizedKeys = append(normalizedKeys, key)
	}
	sort.Strings(normalizedKeys)
}

// Normalize lower-cases, strips non-word characters and collapses the
// remains into single-space-separated tokens.
func Normalize(s string) string {
	s = nonWord.ReplaceAllString(strings.ToLower(s), " ")
	return strings.Join(strings.Fields(s), " ")
}

// Resolve maps an area name to coordinates. It never fails: an area that
// matches nothing falls back to the city centroid nudged by a hash of the
// area name, so the same name always lands on the same point.
func Resolve(area, city string) models.Location {
	if loc, ok := areaCoordinates[area]; ok {
		return loc
	}

	norm := Normalize(area)
	if norm != "" {
		if loc, ok := normalizedTable[norm]; ok {
			return loc
		}
		for _, key := range normalizedKeys {
			if strings.HasPrefix(norm, key) || strings.HasPrefix(key, norm) {
				return normalizedTable[key]
			}
		}
		for _, key := range normalizedKeys {
			if strings.Contains(norm, key) || strings.Contains(key, norm) {
				return normalizedTable[key]
			}
		}
	}

	return fallback(area, city)
}

// fallback spreads unknown areas around the city centroid. The offset is a
// character-code hash of the area name, pushed east and slightly south so
// points land inland rather than in the gulf.
func fallback(area, city string) models.Location {
	centroid, ok := cityCentroids[Normalize(city)]
	if !ok {
		centroid = cityCentroids[defaultCity]
	}

	var hash int
	for _, r := range area {
		hash += int(r)
	}

	return models.Location{
		Lat: centroid.Lat - float64(hash%23)/1000.0,
		Lng: centroid.Lng + 0.01 + float64(hash%41)/1000.0,
	}
}

// KnownAreas returns the reference area names, sorted. The seed command
// draws from this list so demo rows resolve cleanly on the map.
func KnownAreas() []string {
	names := make([]string, 0, len(areaCoordinates))
	for name := range areaCoordinates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
