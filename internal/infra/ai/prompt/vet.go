package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bryanwahyu/citizenconnect/internal/domain/analysis"
	"github.com/bryanwahyu/citizenconnect/internal/domain/projects"
)

// VetSystemPrompt provides strict directions and schema for JSON output.
func VetSystemPrompt() string {
	return `You are a senior public-procurement auditor. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- costVetting, contractorBackground and timelineFeasibility are short narrative paragraphs.
- redFlags and suggestions are arrays of concise strings; use [] when there is nothing to report.
- confidenceScore is a number between 0 and 100.
- sources lists the public reports you relied on; omit entries you cannot attribute to a concrete URI.

Schema (example with empty values):
{
  "costVetting": "<string>",
  "contractorBackground": "<string>",
  "timelineFeasibility": "<string>",
  "redFlags": ["<string>"],
  "suggestions": ["<string>"],
  "confidenceScore": 0,
  "sources": [{"title": "<string>", "uri": "<string>"}]
}`
}

// VetUserPrompt builds the audit request around one project.
func VetUserPrompt(p *projects.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following government project in India for authenticity and feasibility:\n")
	fmt.Fprintf(&b, "Title: %s\n", p.Title)
	fmt.Fprintf(&b, "Location: %s\n", p.Location)
	fmt.Fprintf(&b, "Budget: ₹%d\n", p.Budget)
	fmt.Fprintf(&b, "Contractor: %s\n", p.Contractor.Name)
	fmt.Fprintf(&b, "Status: %s\n", p.Status)
	fmt.Fprintf(&b, "Deadline: %s\n\n", p.Deadline)
	fmt.Fprintf(&b, "Tasks:\n")
	fmt.Fprintf(&b, "1. Search recent media reports about the contractor %q.\n", p.Contractor.Name)
	fmt.Fprintf(&b, "2. Vet the deliverables: is a budget of ₹%d reasonable for this type of project in %s?\n", p.Budget, p.Location)
	fmt.Fprintf(&b, "3. Timeline feasibility: is the deadline of %s realistic?\n", p.Deadline)
	fmt.Fprintf(&b, "4. List any red flags or suggestions.\n")
	return b.String()
}

// vetPayload mirrors the declared schema. The narrative fields are pointers
// so a response that omits a required field is rejected instead of silently
// coerced to "".
type vetPayload struct {
	CostVetting          *string  `json:"costVetting"`
	ContractorBackground *string  `json:"contractorBackground"`
	TimelineFeasibility  *string  `json:"timelineFeasibility"`
	RedFlags             []string `json:"redFlags"`
	Suggestions          []string `json:"suggestions"`
	ConfidenceScore      *float64 `json:"confidenceScore"`
	Sources              []struct {
		Title string `json:"title"`
		URI   string `json:"uri"`
	} `json:"sources"`
}

// ParseVetResponse validates the raw model output against the declared
// schema. Citations without a resolvable URI are dropped; a missing title
// falls back to a generic label.
func ParseVetResponse(raw string) (*analysis.Result, error) {
	var p vetPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("vet response is not valid JSON: %w", err)
	}
	if p.CostVetting == nil || p.ContractorBackground == nil || p.TimelineFeasibility == nil || p.ConfidenceScore == nil {
		return nil, fmt.Errorf("vet response missing required fields")
	}

	res := &analysis.Result{
		CostVetting:          *p.CostVetting,
		ContractorBackground: *p.ContractorBackground,
		TimelineFeasibility:  *p.TimelineFeasibility,
		RedFlags:             p.RedFlags,
		Suggestions:          p.Suggestions,
		ConfidenceScore:      *p.ConfidenceScore,
	}
	if res.RedFlags == nil {
		res.RedFlags = []string{}
	}
	if res.Suggestions == nil {
		res.Suggestions = []string{}
	}
	for _, s := range p.Sources {
		if s.URI == "" {
			continue
		}
		title := s.Title
		if title == "" {
			title = "Search Result"
		}
		res.Sources = append(res.Sources, analysis.Source{Title: title, URI: s.URI})
	}
	return res, nil
}
