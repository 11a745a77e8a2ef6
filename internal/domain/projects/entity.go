package projects

// ID tipe untuk Project
type ProjectID string

// Status enum
type Status string

const (
	StatusProposed  Status = "PROPOSED"
	StatusPitch     Status = "PITCH"
	StatusApproved  Status = "APPROVED"
	StatusOngoing   Status = "ONGOING"
	StatusCompleted Status = "COMPLETED"
)

// ParseStatus maps a raw status string to the closed enum.
// Unrecognized or empty values report ok=false; callers decide the fallback.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusProposed, StatusPitch, StatusApproved, StatusOngoing, StatusCompleted:
		return Status(raw), true
	}
	return "", false
}

// VoteDirection enum
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Contractor value object
type Contractor struct {
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	PastProjects int     `json:"pastProjects"`
}

// BudgetBreakdown value object, one slice of the total budget
type BudgetBreakdown struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// TimelinePhase value object. Status here is free-form display text
// ("Completed", "In Progress", ...), not the project Status enum.
type TimelinePhase struct {
	Phase  string `json:"phase"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

// Aggregate Root: Project
type Project struct {
	ID            ProjectID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	Status        Status     `json:"status"`
	Budget        int64      `json:"budget"`
	AllocatedDate string     `json:"allocatedDate"`
	Deadline      string     `json:"deadline"`
	Contractor    Contractor `json:"contractor"`
	Tags          []string   `json:"tags"`

	// Votes is a separate counter incremented alongside Upvotes/Downvotes,
	// not derived from their sum. Seed data may carry votes > up+down.
	Votes     int `json:"votes"`
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`

	BudgetBreakdown []BudgetBreakdown `json:"budgetBreakdown"`
	Timeline        []TimelinePhase   `json:"timeline"`
}

// ApplyVote records one vote: total always +1, exactly one direction +1.
func (p *Project) ApplyVote(dir VoteDirection) {
	p.Votes++
	if dir == VoteDown {
		p.Downvotes++
	} else {
		p.Upvotes++
	}
}

// Clone returns a deep copy so callers can hand projects across
// goroutines without sharing slices with the store.
func (p *Project) Clone() *Project {
	cp := *p
	cp.Tags = append([]string(nil), p.Tags...)
	cp.BudgetBreakdown = append([]BudgetBreakdown(nil), p.BudgetBreakdown...)
	cp.Timeline = append([]TimelinePhase(nil), p.Timeline...)
	return &cp
}
