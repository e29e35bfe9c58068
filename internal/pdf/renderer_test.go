package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravitejak/legal-assist-bot/internal/models"
)

func sampleComplaint() *models.Complaint {
	return &models.Complaint{
		ID:               "test-id",
		UserID:           7,
		Name:             "Asha Rao",
		RelationName:     "Ravi Rao",
		Age:              "29",
		Phone:            "9876543210",
		Address:          "12-3 MG Road, Kakinada",
		Type:             "Theft",
		IncidentDate:     "2024-01-01 10:00",
		IncidentLocation: "Near bus stand",
		Description:      "someone stole my bag",
		ApplicableLaws:   "IPC 378 - Theft, IPC 379 - Punishment for theft",
		PoliceStation:    "Kakinada Town Police Station",
		PoliceDetails:    "**Kakinada Town Police Station**\n📍 Main Road, Kakinada\n📞 0884-2365555",
		CreatedAt:        time.Now(),
	}
}

func TestRenderComplaintWritesFile(t *testing.T) {
	r := NewRenderer(t.TempDir())

	path, err := r.RenderComplaint(sampleComplaint(), "complaint.pdf")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestRenderComplaintCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	r := NewRenderer(dir)

	path, err := r.RenderComplaint(sampleComplaint(), "complaint.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "complaint.pdf"), path)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestRenderComplaintWithEmptyFields(t *testing.T) {
	r := NewRenderer(t.TempDir())

	c := &models.Complaint{UserID: 1, Type: "General Complaint"}
	path, err := r.RenderComplaint(c, "minimal.pdf")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderFIRWritesFile(t *testing.T) {
	r := NewRenderer(t.TempDir())

	f := &models.FIR{
		Complaint:      *sampleComplaint(),
		Occupation:     "Teacher",
		AccusedDetails: "Unknown person, about 30 years old",
	}
	path, err := r.RenderFIR(f, "fir.pdf")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold markers", "**Station Name**", "Station Name"},
		{"headings", "## Heading\n### Sub", "Heading\n Sub"},
		{"icons become labels", "📍 Main Road\n📞 100", "Address: Main Road\nPhone: 100"},
		{"jurisdiction icon", "✅ covers this area", "Jurisdiction: covers this area"},
		{"warning icon", "⚠️ draft only", "Note: draft only"},
		{"trims whitespace", "  plain  ", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestCleanStationName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"first line only", "**Town Police Station**\nAddress: Main Road", "Town Police Station"},
		{"skips heading line", "# Results\nWomen Police Station\nmore", "Women Police Station"},
		{"empty falls back", "", "Police Station"},
		{"plain name kept", "Kakinada Rural Police Station", "Kakinada Rural Police Station"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanStationName(tt.in))
		})
	}
}

func TestCleanStationNameTruncatesLongLines(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := CleanStationName(long)
	assert.Len(t, got, 203)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "N/A", orNA("   "))
	assert.Equal(t, "value", orNA("value"))
}
