package pitches

import "time"

// ID tipe untuk Pitch
type PitchID string

// Pitch is a citizen-submitted project idea. Pitches live alongside the
// official feed but never become projects automatically.
type Pitch struct {
	ID               PitchID   `json:"id"`
	UserID           string    `json:"userId"`
	UserName         string    `json:"userName"`
	Title            string    `json:"title"`
	Location         string    `json:"location"`
	Problem          string    `json:"problem"`
	ProposedSolution string    `json:"proposedSolution"`
	EstimatedBudget  int64     `json:"estimatedBudget"`
	Timestamp        time.Time `json:"timestamp"`
	SupportCount     int       `json:"supportCount"`
}
