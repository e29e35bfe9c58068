package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicableLawsDeduplicatesInOrder(t *testing.T) {
	// "theft" and "stolen"/"phone" share the IPC 378/379 citations; they must
	// appear once, and the phone-specific IPC 411 must follow.
	got := ApplicableLaws("theft", "my phone was stolen")

	require.Contains(t, got, "IPC 378 - Theft")
	require.Contains(t, got, "IPC 380 - Theft in dwelling house")
	require.Contains(t, got, "IPC 411 - Dishonestly receiving stolen property")

	parts := strings.Split(got, ", ")
	seen := make(map[string]int)
	for _, p := range parts {
		seen[p]++
	}
	for law, count := range seen {
		assert.Equal(t, 1, count, "citation %q repeated", law)
	}

	// Table order: the theft block comes before the phone-only citation.
	assert.Less(t, strings.Index(got, "IPC 380"), strings.Index(got, "IPC 411"))
}

func TestApplicableLawsIdempotent(t *testing.T) {
	first := ApplicableLaws("fraud", "he cheated me on a cheating scheme")
	second := ApplicableLaws("fraud", "he cheated me on a cheating scheme")
	assert.Equal(t, first, second)
}

func TestApplicableLawsFallback(t *testing.T) {
	assert.Equal(t, FallbackLaws, ApplicableLaws("", ""))
	assert.Equal(t, FallbackLaws, ApplicableLaws("unknown matter", "nothing relevant here"))
}

func TestApplicableLawsCaseInsensitive(t *testing.T) {
	got := ApplicableLaws("THEFT", "")
	assert.Contains(t, got, "IPC 379 - Punishment for theft")
}

func TestNearestStationsHarassmentBeforeCyber(t *testing.T) {
	// The harassment branch is checked first, so "cyber harassment" gets the
	// women stations rather than the cyber cell.
	stations := NearestStations("cyber harassment case")
	require.Len(t, stations, 1)
	assert.Equal(t, "Women Police Station, Kakinada", stations[0].Name)
}

func TestNearestStationsCyber(t *testing.T) {
	stations := NearestStations("cyber fraud")
	require.Len(t, stations, 1)
	assert.Equal(t, "Cyber Crime Police Station, Kakinada", stations[0].Name)
}

func TestNearestStationsWomen(t *testing.T) {
	stations := NearestStations("women safety issue")
	require.Len(t, stations, 1)
	assert.Equal(t, "Women Police Station, Kakinada", stations[0].Name)
}

func TestNearestStationsDefault(t *testing.T) {
	stations := NearestStations("unrelated topic")
	require.Len(t, stations, 3)
	assert.Equal(t, "Kakinada Town Police Station", stations[0].Name)
	assert.Equal(t, "Kakinada Rural Police Station", stations[1].Name)
	assert.Equal(t, "Kakinada One Town Police Station", stations[2].Name)
}

func TestNearestStationsEmptyType(t *testing.T) {
	stations := NearestStations("")
	require.Len(t, stations, 3)
	assert.Equal(t, "Kakinada Town Police Station", stations[0].Name)
}

func TestDetectCity(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		location string
		want     string
		found    bool
	}{
		{"by key in address", "MG Road, Vijayawada", "", "Vijayawada", true},
		{"by display name in location", "", "near Tirupati temple", "Tirupati", true},
		{"case insensitive", "GUNTUR district", "", "Guntur", true},
		{"no match", "some village", "some field", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := DetectCity(tt.address, tt.location)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.want, info.City)
				assert.NotEmpty(t, info.PoliceControl)
			}
		})
	}
}

func TestStationsReturnsCopy(t *testing.T) {
	first := Stations()
	first[0].Name = "mutated"
	assert.Equal(t, "Kakinada Town Police Station", Stations()[0].Name)
}
