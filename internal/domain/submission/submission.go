package submission

import "time"

// Submission status values. The lifecycle is one-way:
// Pending -> Accepted or Pending -> Rejected, written only by the backend.
const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
)

// Submission is a team's project submission record.
type Submission struct {
	ID          string    `json:"_id"`
	TeamID      string    `json:"team"`
	StatementID string    `json:"problemStatement"`
	ArtifactURL string    `json:"projectUrl"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CanDelete reports whether the owning team may still delete the
// submission. The backend re-checks; this only drives the button state.
func (s Submission) CanDelete() bool {
	return s.Status == StatusPending
}

// IsTerminal reports whether the status can no longer change.
func (s Submission) IsTerminal() bool {
	return s.Status == StatusAccepted || s.Status == StatusRejected
}
