package model

// EventType classifies a college event.
type EventType string

const (
	EventAcademic EventType = "academic"
	EventCultural EventType = "cultural"
	EventSports   EventType = "sports"
	EventOther    EventType = "other"
)

func (t EventType) Valid() bool {
	switch t {
	case EventAcademic, EventCultural, EventSports, EventOther:
		return true
	}
	return false
}

// CollegeEvent is a dated campus event. Events and tasks are independent
// collections; nothing cross-references them.
type CollegeEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // ISO yyyy-mm-dd
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Type        EventType `json:"type"`
}

// ImportantDate highlights a calendar day. No time component.
type ImportantDate struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
