// Package rules holds the deterministic classification tables: keyword to
// IPC-section lookup, the static police station list, and city helplines.
// Everything here is pure and read-only; the AI-backed paths fall back to
// these functions when the upstream call fails.
package rules

import (
	"strings"

	"github.com/ravitejak/legal-assist-bot/internal/models"
)

// FallbackLaws is returned when no keyword matches at all.
const FallbackLaws = "IPC 378/379 (Theft) or other relevant sections - Consult with police for exact applicable sections"

// ApplicableLaws scans the complaint type and description for known keywords
// and returns the matching citations as a comma-joined string, deduplicated
// in first-seen order.
func ApplicableLaws(complaintType, description string) string {
	combined := strings.ToLower(complaintType) + " " + strings.ToLower(description)

	seen := make(map[string]struct{})
	var applicable []string
	for _, entry := range ipcSections {
		if !strings.Contains(combined, entry.Keyword) {
			continue
		}
		for _, law := range entry.Laws {
			if _, ok := seen[law]; ok {
				continue
			}
			seen[law] = struct{}{}
			applicable = append(applicable, law)
		}
	}

	if len(applicable) == 0 {
		return FallbackLaws
	}
	return strings.Join(applicable, ", ")
}

// NearestStations picks stations from the static table for a complaint type.
// The harassment check runs before the cyber check, so "cyber harassment"
// resolves to the women stations; callers rely on that ordering.
func NearestStations(complaintType string) []models.PoliceStation {
	if complaintType != "" {
		lower := strings.ToLower(complaintType)

		if strings.Contains(lower, "women") || strings.Contains(lower, "harassment") {
			if women := stationsByType("Women"); len(women) > 0 {
				return women
			}
		}
		if strings.Contains(lower, "cyber") {
			if cyber := stationsByType("Cyber"); len(cyber) > 0 {
				return cyber
			}
		}
	}

	return Stations()[:3]
}

func stationsByType(tag string) []models.PoliceStation {
	var matched []models.PoliceStation
	for _, s := range kakinadaStations {
		if strings.Contains(s.Type, tag) {
			matched = append(matched, s)
		}
	}
	return matched
}

// DetectCity finds the first city table entry whose key or display name
// appears in the user's address or the incident location.
func DetectCity(address, incidentLocation string) (models.CityInfo, bool) {
	combined := strings.ToLower(address + " " + incidentLocation)

	for _, entry := range apCities {
		if strings.Contains(combined, entry.Key) || strings.Contains(combined, strings.ToLower(entry.Info.City)) {
			return entry.Info, true
		}
	}
	return models.CityInfo{}, false
}
