package analysis

// Source is one citation backing a vetting verdict.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Result is one AI vetting verdict for exactly one project.
// Never mutated after creation; the store caches at most one per project.
type Result struct {
	CostVetting          string   `json:"costVetting"`
	ContractorBackground string   `json:"contractorBackground"`
	TimelineFeasibility  string   `json:"timelineFeasibility"`
	RedFlags             []string `json:"redFlags"`
	Suggestions          []string `json:"suggestions"`

	// ConfidenceScore is whatever the model reported, expected 0-100,
	// deliberately not clamped.
	ConfidenceScore float64  `json:"confidenceScore"`
	Sources         []Source `json:"sources,omitempty"`
}
