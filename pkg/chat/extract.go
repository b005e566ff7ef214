package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/studyhall/pkg/timeutil"
)

var (
	clockPattern    = regexp.MustCompile(`(?i)(\d{1,2})\s*[:.]\s*(\d{2})\s*(am|pm)?`)
	meridiemPattern = regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)`)
	atHourPattern   = regexp.MustCompile(`(?i)at\s+(\d{1,2})`)
	periodPattern   = regexp.MustCompile(`(?i)(morning|afternoon|evening|night)`)
)

// ExtractTime pulls the first recognizable clock reference out of a message
// and normalizes it to HH:MM. A bare hour below 8 with no meridiem is read
// as PM. With no match at all the result is one hour from now, on the hour.
func ExtractTime(message string, now time.Time) string {
	if m := clockPattern.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		switch strings.ToLower(m[3]) {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		default:
			if hour < 8 {
				hour += 12
			}
		}
		return timeutil.MakeClock(hour, minute)
	}

	if m := meridiemPattern.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if strings.EqualFold(m[2], "pm") && hour < 12 {
			hour += 12
		}
		if strings.EqualFold(m[2], "am") && hour == 12 {
			hour = 0
		}
		return timeutil.MakeClock(hour, 0)
	}

	if m := atHourPattern.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour < 8 {
			hour += 12
		}
		return timeutil.MakeClock(hour, 0)
	}

	if m := periodPattern.FindString(message); m != "" {
		switch strings.ToLower(m) {
		case "morning":
			return "09:00"
		case "afternoon":
			return "14:00"
		case "evening":
			return "18:00"
		}
		return "20:00"
	}

	return timeutil.MakeClock(now.Add(time.Hour).Hour(), 0)
}

var (
	isoDatePattern  = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	usDatePattern   = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	bareDatePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)
)

var weekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var monthNames = []struct {
	name  string
	month int
}{
	{"january", 1}, {"jan", 1}, {"february", 2}, {"feb", 2},
	{"march", 3}, {"mar", 3}, {"april", 4}, {"apr", 4},
	{"may", 5}, {"june", 6}, {"jun", 6}, {"july", 7}, {"jul", 7},
	{"august", 8}, {"aug", 8}, {"september", 9}, {"sep", 9},
	{"october", 10}, {"oct", 10}, {"november", 11}, {"nov", 11},
	{"december", 12}, {"dec", 12},
}

// ExtractDate resolves the first date reference in a message to ISO form.
// Relative words win over weekday names, weekday names over numeric
// patterns, numeric patterns over month names. Weekdays resolve to the next
// occurrence strictly after today. Empty string means no date was found;
// the caller decides whether that blocks the command.
func ExtractDate(message string, now time.Time) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "day after tomorrow"):
		return now.AddDate(0, 0, 2).Format(timeutil.LayoutISO)
	case strings.Contains(lower, "today"):
		return now.Format(timeutil.LayoutISO)
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1).Format(timeutil.LayoutISO)
	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7).Format(timeutil.LayoutISO)
	case strings.Contains(lower, "next month"):
		return now.AddDate(0, 1, 0).Format(timeutil.LayoutISO)
	}

	for i, name := range weekdayNames {
		if !strings.Contains(lower, name) {
			continue
		}
		target := i + 1 // Monday = 1 .. Sunday = 7
		days := target - int(now.Weekday())
		if days <= 0 {
			days += 7
		}
		return now.AddDate(0, 0, days).Format(timeutil.LayoutISO)
	}

	if m := isoDatePattern.FindString(message); m != "" {
		return m
	}
	if m := usDatePattern.FindStringSubmatch(message); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
	}
	if m := bareDatePattern.FindStringSubmatch(message); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%d-%02d-%02d", now.Year(), month, day)
	}

	for _, mn := range monthNames {
		pattern := regexp.MustCompile(`(?i)\b` + mn.name + `\s+(\d{1,2})`)
		if m := pattern.FindStringSubmatch(message); m != nil {
			day, _ := strconv.Atoi(m[1])
			return fmt.Sprintf("%d-%02d-%02d", now.Year(), mn.month, day)
		}
	}

	return ""
}

// stopWords are stripped from a message before it becomes a title. Multi
// word phrases must come before their component words so the whole phrase
// goes in one pass.
var stopWords = []string{
	"can you", "could you", "next week", "next month",
	"add", "create", "schedule", "remind", "me", "to", "please",
	"at", "on", "for", "the", "a", "an", "my", "as", "mark", "set", "make",
	"task", "event", "date", "day", "important", "special", "tomorrow", "today",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"morning", "afternoon", "evening", "night", "this",
}

var (
	stopWordPatterns = compileStopWords()
	titleClockStrip  = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(am|pm)?`)
	titleHourStrip   = regexp.MustCompile(`(?i)\d{1,2}\s*(am|pm)`)
	titleISOStrip    = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	titleSlashStrip  = regexp.MustCompile(`\d{1,2}/\d{1,2}(/\d{4})?`)
	titleMonthStrip  = regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}`)
	spaceCollapse    = regexp.MustCompile(`\s+`)
)

func compileStopWords() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(stopWords))
	for _, w := range stopWords {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+w+`\b`))
	}
	return patterns
}

// Kind selects the fallback title when stripping leaves nothing usable.
type Kind int

const (
	KindTask Kind = iota
	KindEvent
	KindDate
)

func (k Kind) defaultTitle() string {
	switch k {
	case KindEvent:
		return "New Event"
	case KindDate:
		return "Important Day"
	}
	return "New Task"
}

// ExtractTitle strips command words, time and date fragments from a message
// and capitalizes what remains.
func ExtractTitle(message string, kind Kind) string {
	cleaned := message
	for _, p := range stopWordPatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}
	cleaned = titleClockStrip.ReplaceAllString(cleaned, "")
	cleaned = titleHourStrip.ReplaceAllString(cleaned, "")
	cleaned = titleISOStrip.ReplaceAllString(cleaned, "")
	cleaned = titleSlashStrip.ReplaceAllString(cleaned, "")
	cleaned = titleMonthStrip.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(spaceCollapse.ReplaceAllString(cleaned, " "))

	if len(cleaned) < 2 {
		return kind.defaultTitle()
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}

// FormatDate renders an ISO date the way confirmations display it. Dates
// that do not parse are shown as-is.
func FormatDate(iso string) string {
	t, err := time.Parse(timeutil.LayoutISO, iso)
	if err != nil {
		return iso
	}
	return t.Format(timeutil.LayoutUS)
}
