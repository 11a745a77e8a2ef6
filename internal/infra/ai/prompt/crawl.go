package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/bryanwahyu/citizenconnect/internal/domain/projects"
)

// CrawlSystemPrompt declares the lead-discovery schema. The array is wrapped
// in an object because the provider's JSON mode only emits objects.
func CrawlSystemPrompt() string {
	return `You are a public procurement data crawler. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- projects holds at most 3 entries; use [] when nothing credible is found.
- Only include projects backed by public-domain data: tender notices or news reports from the last 12 months.
- budget is a number in rupees; use 0 when unknown.
- status is one of PROPOSED, PITCH, APPROVED, ONGOING, COMPLETED when determinable.

Schema (example with empty values):
{
  "projects": [
    {
      "title": "<string>",
      "description": "<string>",
      "budget": 0,
      "contractorName": "<string>",
      "status": "<string>",
      "deadline": "<string>"
    }
  ]
}`
}

// CrawlUserPrompt builds the lead-discovery request for a location.
func CrawlUserPrompt(location string) string {
	return fmt.Sprintf("Search for 3 recent or ongoing major government projects in %s, India and respond with the JSON per schema.", location)
}

// ParseCrawlResponse decodes the crawl output. A bare array is accepted as
// well, since some models unwrap the envelope despite instructions.
func ParseCrawlResponse(raw string) ([]projects.CrawledSummary, error) {
	var envelope struct {
		Projects []projects.CrawledSummary `json:"projects"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err == nil && envelope.Projects != nil {
		return envelope.Projects, nil
	}

	var bare []projects.CrawledSummary
	if err := json.Unmarshal([]byte(raw), &bare); err == nil {
		return bare, nil
	}
	return nil, fmt.Errorf("crawl response does not match the declared schema")
}
