package projects

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sentinel defaults applied when the crawler response is missing fields.
const (
	DefaultTitle          = "Unknown Project"
	DefaultDescription    = "No description available"
	DefaultDeadline       = "TBD"
	DefaultContractorName = "Unknown"
)

// CrawledSummary is the loosely-typed record returned by the crawl gateway.
// Every field is advisory; FromCrawled fills the gaps.
type CrawledSummary struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Budget         json.Number `json:"budget"`
	ContractorName string      `json:"contractorName"`
	Status         string      `json:"status"`
	Deadline       string      `json:"deadline"`
}

// FromCrawled sanitizes one crawl summary into a full Project.
// Location always comes from the search query, never from the crawler,
// so a lead is filed under the locality the citizen asked about.
func FromCrawled(location string, raw CrawledSummary, now time.Time) *Project {
	title := raw.Title
	if title == "" {
		title = DefaultTitle
	}
	desc := raw.Description
	if desc == "" {
		desc = DefaultDescription
	}
	status, ok := ParseStatus(raw.Status)
	if !ok {
		status = StatusProposed
	}
	deadline := raw.Deadline
	if deadline == "" {
		deadline = DefaultDeadline
	}
	name := raw.ContractorName
	if name == "" {
		name = DefaultContractorName
	}
	budget := coerceBudget(raw.Budget)

	return &Project{
		ID:            ProjectID(fmt.Sprintf("crawled-%s", uuid.New().String())),
		Title:         title,
		Description:   desc,
		Location:      location,
		Status:        status,
		Budget:        budget,
		AllocatedDate: now.Format("2006-01-02"),
		Deadline:      deadline,
		Contractor:    Contractor{Name: name, Rating: 0, PastProjects: 0},
		Tags:          []string{"Crawled", "Public Domain"},
		BudgetBreakdown: []BudgetBreakdown{
			{Category: "Total", Amount: budget},
		},
		Timeline: []TimelinePhase{
			{Phase: "Initial Phase", Status: "Proposed", Date: "N/A"},
		},
	}
}

// coerceBudget turns whatever the crawler sent into a non-negative amount.
// Fractional amounts are truncated; anything non-numeric or negative is 0.
func coerceBudget(n json.Number) int64 {
	if n == "" {
		return 0
	}
	if v, err := n.Int64(); err == nil {
		if v < 0 {
			return 0
		}
		return v
	}
	if f, err := n.Float64(); err == nil {
		if f < 0 {
			return 0
		}
		return int64(f)
	}
	return 0
}
