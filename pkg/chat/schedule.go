package chat

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/studyhall/pkg/model"
	"tableflip.dev/studyhall/pkg/timeutil"
)

// draftTask is a task before identity and flag fields are attached.
type draftTask struct {
	Title       string
	Description string
	Time        string
	Priority    model.Priority
}

var (
	looseTimePattern = regexp.MustCompile(`(?i)(\d{1,2})\s*[:.]?\s*(\d{2})?\s*(am|pm)?`)
	durationPattern  = regexp.MustCompile(`(?i)(\d+)\s*(hour|hr|minute|min)`)
)

// parseStudyTimes pulls every numeric time token from a message. Without a
// meridiem, hours below 7 other than 1 through 3 are shifted to the
// afternoon since study blocks rarely start before dawn.
func parseStudyTimes(message string) []string {
	var times []string
	seen := map[string]bool{}
	for _, m := range looseTimePattern.FindAllStringSubmatch(message, -1) {
		if m[1] == "" {
			continue
		}
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
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
			if hour < 7 && hour != 1 && hour != 2 && hour != 3 {
				hour += 12
			}
		}
		clock := timeutil.MakeClock(hour, minute)
		if !seen[clock] {
			seen[clock] = true
			times = append(times, clock)
		}
	}
	return times
}

func parseDuration(message string) int {
	m := durationPattern.FindStringSubmatch(message)
	if m == nil {
		return 60
	}
	value, _ := strconv.Atoi(m[1])
	if strings.Contains(strings.ToLower(m[2]), "min") {
		return value
	}
	return value * 60
}

// parseStudySchedule builds a custom study-block sequence from subjects and
// times named in the message. Subjects pair with times positionally; a
// short break follows each paired block except the last, offset by the
// detected session duration. An empty result means the message named
// neither subjects nor times.
func parseStudySchedule(message string, now time.Time) ([]draftTask, string) {
	subjects := matchSubjects(studySubjects, message)
	times := parseStudyTimes(message)
	duration := parseDuration(message)

	var tasks []draftTask
	var b strings.Builder
	b.WriteString("Custom study timetable created!\n\n")

	switch {
	case len(subjects) > 0 && len(times) > 0:
		for i, clock := range times {
			if i >= len(subjects) {
				break
			}
			subject := subjects[i]
			tasks = append(tasks, draftTask{
				Title:       subject + " Study",
				Description: "Focus on " + subject + ", important topics and practice",
				Time:        clock,
				Priority:    model.PriorityHigh,
			})
			fmt.Fprintf(&b, "  %s  %s Study\n", timeutil.Format12(clock), subject)

			if i < len(subjects)-1 {
				breakTime := timeutil.AddMinutes(clock, duration)
				tasks = append(tasks, draftTask{
					Title:       "Short Break",
					Description: "Rest and refresh, 10-15 minutes",
					Time:        breakTime,
					Priority:    model.PriorityLow,
				})
				fmt.Fprintf(&b, "  %s  Short Break\n", timeutil.Format12(breakTime))
			}
		}
	case len(subjects) > 0:
		// No explicit times: start at the next hour, 2 PM at the earliest.
		hour := now.Hour() + 1
		if hour < 14 {
			hour = 14
		}
		fmt.Fprintf(&b, "Schedule starting from %02d:00\n\n", hour)
		for i, subject := range subjects {
			clock := timeutil.MakeClock(hour, 0)
			tasks = append(tasks, draftTask{
				Title:       subject + " Study",
				Description: "Focus on " + subject + ", concepts and practice",
				Time:        clock,
				Priority:    model.PriorityHigh,
			})
			fmt.Fprintf(&b, "  %s  %s Study\n", timeutil.Format12(clock), subject)

			hour += 2
			if i < len(subjects)-1 {
				breakTime := timeutil.MakeClock(hour-1, 30)
				tasks = append(tasks, draftTask{
					Title:       "Short Break",
					Description: "Rest and refresh",
					Time:        breakTime,
					Priority:    model.PriorityLow,
				})
				fmt.Fprintf(&b, "  %s  Break\n", timeutil.Format12(breakTime))
			}
		}
	case len(times) > 0:
		for i, clock := range times {
			tasks = append(tasks, draftTask{
				Title:       fmt.Sprintf("Study Session %d", i+1),
				Description: "Focused study time, important topics",
				Time:        clock,
				Priority:    model.PriorityHigh,
			})
			fmt.Fprintf(&b, "  %s  Study Session %d\n", timeutil.Format12(clock), i+1)
		}
	}

	if len(tasks) > 0 {
		b.WriteString("\nAll tasks added to your schedule with notifications.\n")
		b.WriteString("Remove any of them with: studyhall task remove\n")
	}
	return tasks, b.String()
}

// defaultRoutine is the fixed six-task daily plan used when a routine is
// requested with no specifics.
func defaultRoutine() []draftTask {
	return []draftTask{
		{Title: "Morning Study Session", Time: "09:00", Priority: model.PriorityHigh, Description: "Fresh mind, tackle difficult subjects"},
		{Title: "Attend Classes", Time: "11:00", Priority: model.PriorityHigh, Description: "Focus and take notes"},
		{Title: "Lunch Break", Time: "13:00", Priority: model.PriorityLow, Description: "Healthy meal and relaxation"},
		{Title: "Afternoon Study", Time: "15:00", Priority: model.PriorityMedium, Description: "Review class notes"},
		{Title: "Exercise/Break", Time: "17:00", Priority: model.PriorityLow, Description: "Physical activity, refresh mind"},
		{Title: "Evening Revision", Time: "19:00", Priority: model.PriorityMedium, Description: "Practice and problem-solving"},
	}
}

const routineResponse = `Daily study routine created!

All tasks added to your schedule:

  9:00 AM   Morning Study Session (high)
  11:00 AM  Attend Classes (high)
  1:00 PM   Lunch Break
  3:00 PM   Afternoon Study
  5:00 PM   Exercise/Break
  7:00 PM   Evening Revision

Remove any task with: studyhall task remove
All tasks have notifications enabled. Stay productive!`

// examEntry is one detected (subject, time) pair.
type examEntry struct {
	Subject  string
	Time     string
	Date     string
	Location string
}

type examInfo struct {
	Exams    []examEntry
	Tomorrow bool
	Date     string
	Named    bool // at least one subject pattern matched
}

var examTimePattern = regexp.MustCompile(`(?i)(\d{1,2})[:.](\d{2})|(\d{1,2})\s*(am|pm)`)

// parseExamInfo extracts (subject, time) pairs and the exam date from an
// announcement. Subjects pair positionally with time tokens; when times run
// out the remainder default to 09:00. With no subject matches but at least
// one time, generic numbered subjects are produced.
func parseExamInfo(message string, now time.Time) examInfo {
	lower := strings.ToLower(message)

	tomorrow := false
	examDate := now
	switch {
	case strings.Contains(lower, "day after") || strings.Contains(lower, "next day"):
		examDate = now.AddDate(0, 0, 2)
	case strings.Contains(lower, "tomorrow"):
		examDate = now.AddDate(0, 0, 1)
		tomorrow = true
	default:
		if d := ExtractDate(message, now); d != "" {
			if t, err := time.Parse(timeutil.LayoutISO, d); err == nil {
				examDate = t
			}
		}
	}
	dateStr := examDate.Format(timeutil.LayoutISO)

	var times []string
	for _, m := range examTimePattern.FindAllStringSubmatch(message, -1) {
		var hour, minute int
		if m[1] != "" {
			hour, _ = strconv.Atoi(m[1])
			minute, _ = strconv.Atoi(m[2])
		} else {
			hour, _ = strconv.Atoi(m[3])
			if strings.EqualFold(m[4], "pm") && hour < 12 {
				hour += 12
			}
		}
		times = append(times, timeutil.MakeClock(hour, minute))
	}

	info := examInfo{Tomorrow: tomorrow, Date: dateStr}
	subjects := matchSubjects(examSubjects, lower)
	info.Named = len(subjects) > 0
	for i, subject := range subjects {
		clock := "09:00"
		if i < len(times) {
			clock = times[i]
		}
		info.Exams = append(info.Exams, examEntry{
			Subject:  subject,
			Time:     clock,
			Date:     dateStr,
			Location: "Exam Hall",
		})
	}
	if len(info.Exams) == 0 {
		for i, clock := range times {
			info.Exams = append(info.Exams, examEntry{
				Subject:  fmt.Sprintf("Subject %d", i+1),
				Time:     clock,
				Date:     dateStr,
				Location: "Exam Hall",
			})
		}
	}
	return info
}

// buildExamPlan turns detected exams into a preparation schedule. The shape
// depends on how much of today is left: before 18:00 each subject gets two
// spaced sessions with breaks plus dinner and a late revision slot; between
// 18:00 and 22:00 one condensed session per subject; after 22:00 no study
// tasks at all. The exam-day sequence (wake-up, final revision, packing,
// the exam blocks, celebration) is always appended.
func buildExamPlan(info examInfo, now time.Time) ([]draftTask, string) {
	var tasks []draftTask
	var b strings.Builder
	currentHour := now.Hour()

	exams := make([]examEntry, len(info.Exams))
	copy(exams, info.Exams)
	sort.Slice(exams, func(i, j int) bool { return exams[i].Time < exams[j].Time })

	b.WriteString("Personalized exam preparation timetable\n\n")
	if info.Tomorrow {
		b.WriteString("Exam schedule (tomorrow):\n")
	} else {
		fmt.Fprintf(&b, "Exam schedule (%s):\n", FormatDate(info.Date))
	}
	for i, exam := range exams {
		fmt.Fprintf(&b, "  %d. %s  %s\n", i+1, exam.Subject, timeutil.Format12(exam.Time))
	}
	b.WriteString("\n")

	if info.Tomorrow {
		b.WriteString("Today's preparation schedule:\n\n")

		switch {
		case currentHour < 18:
			startHour := currentHour + 1
			if startHour < 18 {
				startHour = 18
			}
			perSubject := (23 - startHour) / (len(exams) * 2)

			for i, exam := range exams {
				session1 := startHour + i*perSubject*2
				clock1 := timeutil.MakeClock(session1, 0)
				tasks = append(tasks, draftTask{
					Title:       exam.Subject + " Core Concepts",
					Description: "Main topics, important concepts, formulas",
					Time:        clock1,
					Priority:    model.PriorityHigh,
				})
				fmt.Fprintf(&b, "  %s  %s Core Concepts\n", timeutil.Format12(clock1), exam.Subject)

				breakClock := timeutil.MakeClock(session1+perSubject/2, perSubject%2*30)
				tasks = append(tasks, draftTask{
					Title:       "Quick Break",
					Description: "10-15 min break, hydrate, stretch",
					Time:        breakClock,
					Priority:    model.PriorityLow,
				})
				fmt.Fprintf(&b, "  %s  Short Break\n", timeutil.Format12(breakClock))

				clock2 := timeutil.MakeClock(session1+perSubject, 0)
				tasks = append(tasks, draftTask{
					Title:       exam.Subject + " Practice & Revision",
					Description: "Solve problems, previous papers, quick revision",
					Time:        clock2,
					Priority:    model.PriorityHigh,
				})
				fmt.Fprintf(&b, "  %s  %s Practice\n", timeutil.Format12(clock2), exam.Subject)
			}

			if currentHour < 21 {
				tasks = append(tasks, draftTask{
					Title:       "Dinner Break",
					Description: "Proper meal, relax for 30 minutes",
					Time:        "21:00",
					Priority:    model.PriorityLow,
				})
				fmt.Fprintf(&b, "  %s  Dinner Break\n", timeutil.Format12("21:00"))
			}

			tasks = append(tasks, draftTask{
				Title:       "Quick Revision, All Subjects",
				Description: "Quick overview of key points from all subjects",
				Time:        "22:30",
				Priority:    model.PriorityMedium,
			})
			fmt.Fprintf(&b, "  %s  Quick Revision All Subjects\n", timeutil.Format12("22:30"))

		case currentHour < 22:
			b.WriteString("Quick evening revision, starting now:\n")
			for i, exam := range exams {
				clock := timeutil.MakeClock(currentHour+1+i, 0)
				tasks = append(tasks, draftTask{
					Title:       exam.Subject + " Quick Revision",
					Description: "Focus on important topics, formulas, key concepts",
					Time:        clock,
					Priority:    model.PriorityHigh,
				})
				fmt.Fprintf(&b, "  %s  %s Quick Revision\n", timeutil.Format12(clock), exam.Subject)
			}

		default:
			b.WriteString("It's quite late. Quick last-minute tips:\n")
			b.WriteString("  Review your notes briefly\n")
			b.WriteString("  Get good sleep, it matters more than cramming\n")
			b.WriteString("  Wake up early for final revision\n\n")
		}

		tasks = append(tasks, draftTask{
			Title:       "Sleep Time",
			Description: "7-8 hours sleep is crucial for exam performance",
			Time:        "23:30",
			Priority:    model.PriorityHigh,
		})
		fmt.Fprintf(&b, "  %s  Sleep Well (7-8 hours)\n\n", timeutil.Format12("23:30"))
	}

	b.WriteString("Exam day schedule:\n\n")

	firstHour := timeutil.Hour(exams[0].Time)
	wakeHour := firstHour - 2
	if wakeHour < 6 {
		wakeHour = 6
	}
	wakeClock := timeutil.MakeClock(wakeHour, 0)
	tasks = append(tasks, draftTask{
		Title:       "Wake Up & Fresh Start",
		Description: "Good breakfast, get ready, stay calm",
		Time:        wakeClock,
		Priority:    model.PriorityHigh,
	})
	fmt.Fprintf(&b, "  %s  Wake Up & Breakfast\n", timeutil.Format12(wakeClock))

	revisionClock := timeutil.MakeClock(wakeHour+1, 0)
	tasks = append(tasks, draftTask{
		Title:       exams[0].Subject + " Final Revision",
		Description: "Last minute revision, important formulas, key points",
		Time:        revisionClock,
		Priority:    model.PriorityHigh,
	})
	fmt.Fprintf(&b, "  %s  %s Final Revision\n", timeutil.Format12(revisionClock), exams[0].Subject)

	readyClock := timeutil.MakeClock(firstHour-1, 0)
	tasks = append(tasks, draftTask{
		Title:       "Get Ready & Pack",
		Description: "Stationery, water bottle, admit card, ID",
		Time:        readyClock,
		Priority:    model.PriorityMedium,
	})
	fmt.Fprintf(&b, "  %s  Get Ready & Pack\n", timeutil.Format12(readyClock))

	for i, exam := range exams {
		tasks = append(tasks, draftTask{
			Title:       strings.ToUpper(exam.Subject) + " EXAM",
			Description: "Stay calm, read questions carefully, manage time well",
			Time:        exam.Time,
			Priority:    model.PriorityHigh,
		})
		fmt.Fprintf(&b, "  %s  %s EXAM\n", timeutil.Format12(exam.Time), strings.ToUpper(exam.Subject))

		if i < len(exams)-1 {
			gap := timeutil.Hour(exams[i+1].Time) - timeutil.Hour(exam.Time)
			if gap > 1 {
				breakClock := timeutil.MakeClock(timeutil.Hour(exam.Time)+1, 0)
				tasks = append(tasks, draftTask{
					Title:       "Break + " + exams[i+1].Subject + " Revision",
					Description: "Relax, quick snack, light revision for next exam",
					Time:        breakClock,
					Priority:    model.PriorityMedium,
				})
				fmt.Fprintf(&b, "  %s  Break + %s Quick Revision\n", timeutil.Format12(breakClock), exams[i+1].Subject)
			}
		}
	}

	celebrationClock := timeutil.MakeClock(timeutil.Hour(exams[len(exams)-1].Time)+1, 0)
	tasks = append(tasks, draftTask{
		Title:       "All Exams Done! Celebrate!",
		Description: "Well deserved rest, you did great",
		Time:        celebrationClock,
		Priority:    model.PriorityLow,
	})
	fmt.Fprintf(&b, "  %s  Celebrate, you did it!\n\n", timeutil.Format12(celebrationClock))

	b.WriteString("Exam day tips:\n")
	b.WriteString("  Stay hydrated, drink water regularly\n")
	b.WriteString("  Read all questions carefully\n")
	b.WriteString("  Manage your time well\n")
	b.WriteString("  Review your answers if time permits\n\n")
	b.WriteString("All tasks added to your schedule with notifications. Good luck!")

	return tasks, b.String()
}
