package task

import (
	"testing"

	"tableflip.dev/studyhall/pkg/model"
)

func TestSortSchedulePriorityBeforeTime(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "Laundry", Time: "09:00", Priority: model.PriorityMedium},
		{ID: "2", Title: "Exam prep", Time: "15:00", Priority: model.PriorityHigh},
		{ID: "3", Title: "Stretch", Time: "08:00", Priority: model.PriorityLow},
		{ID: "4", Title: "Flashcards", Time: "07:00", Priority: model.PriorityHigh},
	}

	sortSchedule(tasks)

	want := []string{"Flashcards", "Exam prep", "Laundry", "Stretch"}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Fatalf("position %d: got %q, want %q", i, tasks[i].Title, title)
		}
	}
}

func TestSortScheduleTieBreaksOnTime(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "Later", Time: "18:00", Priority: model.PriorityMedium},
		{ID: "2", Title: "Earlier", Time: "10:00", Priority: model.PriorityMedium},
	}

	sortSchedule(tasks)

	if tasks[0].Title != "Earlier" || tasks[1].Title != "Later" {
		t.Fatalf("equal priorities should order by time, got %q then %q", tasks[0].Title, tasks[1].Title)
	}
}
