package model

// Priority buckets a task for sorting and display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities high before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Valid reports whether p is one of the three known buckets.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Task is a scheduled to-do with minute-granularity notification times.
// Notified and NotifiedBefore are one-shot idempotence guards owned by the
// notification scheduler; they are never reset once true.
type Task struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Time           string   `json:"time"` // HH:MM, 24h
	Priority       Priority `json:"priority"`
	Notified       bool     `json:"notified"`
	NotifiedBefore bool     `json:"notifiedBefore"`
	Completed      bool     `json:"completed"`
}
