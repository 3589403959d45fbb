package statement

// Statement is an immutable problem statement fetched for display and
// for the submission/assignment flows.
type Statement struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"` // markdown
	SDGID       int      `json:"sdg"`
	Features    []string `json:"features,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
}
