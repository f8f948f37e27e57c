package planner

import (
	"testing"

	"mealcycle/internal/dish"
	"mealcycle/internal/schedule"
)

func TestBuildCalendar_WholeWeeks(t *testing.T) {
	cal := BuildCalendar(2024, 3, emptySnapshot())

	if len(cal.Weeks) == 0 {
		t.Fatal("expected at least one week")
	}
	for i, week := range cal.Weeks {
		if len(week) != 7 {
			t.Fatalf("week %d has %d cells, want 7", i, len(week))
		}
	}

	// March 2024 starts on a Friday and ends on a Sunday: six Sunday-first weeks.
	if len(cal.Weeks) != 6 {
		t.Fatalf("March 2024 should span 6 weeks, got %d", len(cal.Weeks))
	}

	if first := cal.Weeks[0][0]; first.Date != "2024-02-25" {
		t.Fatalf("grid should start on Sunday 2024-02-25, got %s", first.Date)
	}
}

func TestBuildCalendar_OutOfMonthCellsNotResolved(t *testing.T) {
	snap := emptySnapshot()
	snap.Dishes[3] = &dish.Dish{ID: 3, Name: "Moqueca"}
	for i := 1; i <= schedule.CycleLength; i++ {
		snap.Cycle[i] = schedule.SlotRefs{LunchDishID: ptr(3)}
	}

	cal := BuildCalendar(2024, 3, snap)

	for _, week := range cal.Weeks {
		for _, cell := range week {
			if cell.InMonth && cell.Meals == nil {
				t.Fatalf("in-month cell %s has no meals", cell.Date)
			}
			if !cell.InMonth && cell.Meals != nil {
				t.Fatalf("out-of-month cell %s should carry meals=null", cell.Date)
			}
		}
	}
}

func TestBuildCalendar_Metadata(t *testing.T) {
	cal := BuildCalendar(2024, 3, emptySnapshot())

	if cal.Year != 2024 || cal.Month != 3 {
		t.Fatalf("unexpected year/month: %d/%d", cal.Year, cal.Month)
	}
	if cal.CycleMode != "28-day" {
		t.Fatalf("unexpected cycle_mode: %s", cal.CycleMode)
	}
	if len(cal.Weekdays) != 7 || cal.Weekdays[0] != "Domingo" {
		t.Fatalf("weekdays must be Sunday-first, got %v", cal.Weekdays)
	}
}
