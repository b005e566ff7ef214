package model

// UserProfile is a per-identity singleton.
type UserProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"` // ISO yyyy-mm-dd
	College  string `json:"college"`
	Course   string `json:"course"`
	Year     string `json:"year"`
}

// Goal holds the pair of goals driving timetable generation. Singleton.
type Goal struct {
	ShortTerm string `json:"shortTerm"`
	LongTerm  string `json:"longTerm"`
	CreatedAt string `json:"createdAt"`
}

// TimetableTask is one entry of the generated goal timetable. It is a
// distinct entity from Task with its own id space and display-string times.
type TimetableTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Time        string `json:"time"`     // 12h display string, e.g. "07:00 AM"
	Duration    string `json:"duration"` // display string, e.g. "30 min"
	Completed   bool   `json:"completed"`
	StarClaimed bool   `json:"starClaimed"`
	Day         string `json:"day,omitempty"`
}

// GoalProgress aggregates timetable completion. CompletedTasks and
// TotalTasks are always recomputed from the timetable collection;
// StarsEarned is monotonically non-decreasing.
type GoalProgress struct {
	CompletedTasks int    `json:"completedTasks"`
	TotalTasks     int    `json:"totalTasks"`
	StarsEarned    int    `json:"starsEarned"`
	LastStarTime   *int64 `json:"lastStarTime"` // epoch ms, nil until first star
}
