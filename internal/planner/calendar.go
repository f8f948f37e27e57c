package planner

import "time"

// Weekdays labels the Sunday-first week order of the calendar grid.
var Weekdays = []string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// BuildCalendar expands the month into whole Sunday-first weeks,
// including the trailing days of the previous month and the leading
// days of the next one. Only in-month cells are resolved.
func BuildCalendar(year, month int, snap Snapshot) *Calendar {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday()))

	var weeks [][]CalendarCell
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 7) {
		week := make([]CalendarCell, 0, 7)
		for i := 0; i < 7; i++ {
			cur := day.AddDate(0, 0, i)
			cell := CalendarCell{
				Date:    cur.Format("2006-01-02"),
				InMonth: int(cur.Month()) == month && cur.Year() == year,
			}
			if cell.InMonth {
				meals := ResolveDay(cur, snap)
				cell.Meals = &meals
			}
			week = append(week, cell)
		}
		weeks = append(weeks, week)
	}

	return &Calendar{
		Year:      year,
		Month:     month,
		Weekdays:  Weekdays,
		Weeks:     weeks,
		CycleMode: "28-day",
	}
}
