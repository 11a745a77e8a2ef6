package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/citizenconnect/internal/domain/analysis"
	"github.com/bryanwahyu/citizenconnect/internal/domain/projects"
	"github.com/bryanwahyu/citizenconnect/internal/infra/ai/prompt"
)

func TestParseVetResponse(t *testing.T) {
	raw := `{
		"costVetting": "within range for a 6-lane widening",
		"contractorBackground": "two delayed projects reported in 2023",
		"timelineFeasibility": "deadline is aggressive",
		"redFlags": ["contractor under audit"],
		"suggestions": ["request milestone-wise disbursal"],
		"confidenceScore": 64,
		"sources": [
			{"title": "The Hindu", "uri": "https://example.org/a"},
			{"title": "orphan citation"},
			{"uri": "https://example.org/b"}
		]
	}`

	res, err := prompt.ParseVetResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "within range for a 6-lane widening", res.CostVetting)
	assert.Equal(t, float64(64), res.ConfidenceScore)
	assert.Equal(t, []string{"contractor under audit"}, res.RedFlags)

	// citations without a URI are dropped; a missing title gets a label
	require.Len(t, res.Sources, 2)
	assert.Equal(t, analysis.Source{Title: "The Hindu", URI: "https://example.org/a"}, res.Sources[0])
	assert.Equal(t, analysis.Source{Title: "Search Result", URI: "https://example.org/b"}, res.Sources[1])
}

func TestParseVetResponseEmptyArraysStayEmpty(t *testing.T) {
	raw := `{
		"costVetting": "ok",
		"contractorBackground": "ok",
		"timelineFeasibility": "ok",
		"confidenceScore": 90
	}`
	res, err := prompt.ParseVetResponse(raw)
	require.NoError(t, err)
	assert.NotNil(t, res.RedFlags)
	assert.Empty(t, res.RedFlags)
	assert.NotNil(t, res.Suggestions)
	assert.Empty(t, res.Suggestions)
	assert.Nil(t, res.Sources)
}

func TestParseVetResponseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"not json":             `report: all good`,
		"empty object":         `{}`,
		"missing narrative":    `{"costVetting":"x","confidenceScore":1}`,
		"wrong type for flags": `{"costVetting":"x","contractorBackground":"x","timelineFeasibility":"x","redFlags":"none","confidenceScore":1}`,
		"wrong type for score": `{"costVetting":"x","contractorBackground":"x","timelineFeasibility":"x","confidenceScore":"high"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := prompt.ParseVetResponse(raw)
			assert.Error(t, err)
		})
	}
}

func TestVetUserPromptEmbedsProjectFields(t *testing.T) {
	p := &projects.Project{
		Title:      "Smart City Road Widening - MG Road",
		Location:   "Bengaluru, Karnataka",
		Budget:     45000000,
		Status:     projects.StatusOngoing,
		Deadline:   "2024-12-30",
		Contractor: projects.Contractor{Name: "InfraBuild South Ltd."},
	}
	got := prompt.VetUserPrompt(p)
	assert.Contains(t, got, "Smart City Road Widening - MG Road")
	assert.Contains(t, got, "Bengaluru, Karnataka")
	assert.Contains(t, got, "₹45000000")
	assert.Contains(t, got, "InfraBuild South Ltd.")
	assert.Contains(t, got, "ONGOING")
	assert.Contains(t, got, "2024-12-30")
}

func TestParseCrawlResponse(t *testing.T) {
	wrapped := `{"projects":[{"title":"Metro Phase 2","budget":900000,"contractorName":"X Corp","status":"ONGOING","deadline":"2025-01-01"},{}]}`
	got, err := prompt.ParseCrawlResponse(wrapped)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Metro Phase 2", got[0].Title)
	assert.Equal(t, "900000", got[0].Budget.String())

	bare := `[{"title":"Flyover repair"}]`
	got, err = prompt.ParseCrawlResponse(bare)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Flyover repair", got[0].Title)

	empty := `{"projects":[]}`
	got, err = prompt.ParseCrawlResponse(empty)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = prompt.ParseCrawlResponse(`{"leads": 3}`)
	assert.Error(t, err)
}
