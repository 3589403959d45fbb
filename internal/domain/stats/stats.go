package stats

// CountRow is one label/count pair in a breakdown table (college, state).
type CountRow struct {
	Label string `json:"label"`
	Users int    `json:"users"`
	Teams int    `json:"teams"`
}

// DateBucket is one day's registration count for the time-series chart.
type DateBucket struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// GenderBreakdown counts registered users by gender.
type GenderBreakdown struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Other  int `json:"other"`
}

// AdminStats is the full precomputed aggregation snapshot fetched whole
// on every admin page load. The backend recomputes it; this layer never
// updates it incrementally.
type AdminStats struct {
	TotalUsers    int             `json:"totalUsers"`
	TotalTeams    int             `json:"totalTeams"`
	Gender        GenderBreakdown `json:"gender"`
	ByCollege     []CountRow      `json:"byCollege"`
	ByState       []CountRow      `json:"byState"`
	Registrations []DateBucket    `json:"registrations"`
}

// ZeroAdminStats is the snapshot rendered when the fetch fails: charts
// degrade to zeros instead of erroring.
func ZeroAdminStats() AdminStats {
	return AdminStats{
		ByCollege:     []CountRow{},
		ByState:       []CountRow{},
		Registrations: []DateBucket{},
	}
}

// HomepageStats is the small public counter block on the landing page.
type HomepageStats struct {
	Participants int `json:"participants"`
	Teams        int `json:"teams"`
	Colleges     int `json:"colleges"`
	Submissions  int `json:"submissions"`
}

// LeaderboardRow is one public leaderboard entry.
type LeaderboardRow struct {
	Rank     int     `json:"rank"`
	TeamName string  `json:"teamName"`
	College  string  `json:"college"`
	Score    float64 `json:"score"`
}
