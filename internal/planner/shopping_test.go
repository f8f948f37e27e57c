package planner

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"mealcycle/internal/dish"
	"mealcycle/internal/ingredient"
	"mealcycle/internal/schedule"
)

func priced(v float64) *float64 {
	return &v
}

// testPlanner wires a planner service against the in-memory repositories.
func testPlanner(t *testing.T) (*Service, *schedule.InMemoryRepository, *dish.InMemoryRepository, *ingredient.InMemoryRepository) {
	t.Helper()
	scheduleRepo := schedule.NewInMemoryRepository()
	dishRepo := dish.NewInMemoryRepository()
	ingredientRepo := ingredient.NewInMemoryRepository()
	return NewService(scheduleRepo, dishRepo, ingredientRepo), scheduleRepo, dishRepo, ingredientRepo
}

func TestShopping_InvalidRange(t *testing.T) {
	service, _, _, _ := testPlanner(t)

	_, err := service.Shopping(context.Background(), "2024-01-05", "2024-01-01")
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestShopping_InvalidDate(t *testing.T) {
	service, _, _, _ := testPlanner(t)

	for _, pair := range [][2]string{
		{"not-a-date", "2024-01-05"},
		{"2024-01-01", "05/01/2024"},
	} {
		if _, err := service.Shopping(context.Background(), pair[0], pair[1]); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("start=%q end=%q: expected ErrInvalidDate, got %v", pair[0], pair[1], err)
		}
	}
}

func TestShopping_SingleDayEndToEnd(t *testing.T) {
	service, scheduleRepo, dishRepo, ingredientRepo := testPlanner(t)
	ctx := context.Background()

	ingX := &ingredient.Ingredient{Name: "Ovo", Unit: "unit", UnitPrice: priced(3.0), PriceCurrency: "BRL"}
	if err := ingredientRepo.Create(ctx, ingX); err != nil {
		t.Fatal(err)
	}

	dishA := &dish.Dish{Name: "Omelete"}
	if err := dishRepo.Create(ctx, dishA); err != nil {
		t.Fatal(err)
	}
	if err := dishRepo.ReplaceLines(ctx, dishA.ID, []*dish.Line{
		{IngredientID: ingX.ID, Amount: 2, Unit: "unit"},
	}); err != nil {
		t.Fatal(err)
	}

	if err := scheduleRepo.EnsureCycle(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := scheduleRepo.UpdateCycleDay(ctx, 1, schedule.SlotRefs{LunchDishID: &dishA.ID}); err != nil {
		t.Fatal(err)
	}

	// March 1 -> day-of-month 1 -> template index 1.
	list, err := service.Shopping(ctx, "2024-03-01", "2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(list.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(list.Items))
	}
	item := list.Items[0]
	if item.IngredientName != "Ovo" || item.Unit != "unit" || item.Amount != 2 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.EstimatedCost == nil || *item.EstimatedCost != 6.0 {
		t.Fatalf("expected estimated_cost 6.0, got %v", item.EstimatedCost)
	}
	if list.EstimatedTotal != 6.0 {
		t.Fatalf("expected estimated_total 6.0, got %v", list.EstimatedTotal)
	}
	if list.Currency == nil || *list.Currency != "BRL" {
		t.Fatalf("expected currency BRL, got %v", list.Currency)
	}
}

func TestShopping_DuplicatesAccumulate(t *testing.T) {
	service, scheduleRepo, dishRepo, ingredientRepo := testPlanner(t)
	ctx := context.Background()

	flour := &ingredient.Ingredient{Name: "Farinha", Unit: "g", PriceCurrency: "BRL"}
	if err := ingredientRepo.Create(ctx, flour); err != nil {
		t.Fatal(err)
	}

	d := &dish.Dish{Name: "Pão"}
	if err := dishRepo.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	if err := dishRepo.ReplaceLines(ctx, d.ID, []*dish.Line{
		{IngredientID: flour.ID, Amount: 100, Unit: "g"},
	}); err != nil {
		t.Fatal(err)
	}

	if err := scheduleRepo.EnsureCycle(ctx); err != nil {
		t.Fatal(err)
	}
	// Same dish as lunch on two consecutive days.
	for _, idx := range []int{1, 2} {
		if _, err := scheduleRepo.UpdateCycleDay(ctx, idx, schedule.SlotRefs{LunchDishID: &d.ID}); err != nil {
			t.Fatal(err)
		}
	}

	list, err := service.Shopping(ctx, "2024-03-01", "2024-03-02")
	if err != nil {
		t.Fatal(err)
	}

	if len(list.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(list.Items))
	}
	if list.Items[0].Amount != 200 {
		t.Fatalf("expected amount 200, got %v", list.Items[0].Amount)
	}
	// No unit price: no cost, no currency, zero total.
	if list.Items[0].EstimatedCost != nil {
		t.Fatalf("expected null estimated_cost, got %v", *list.Items[0].EstimatedCost)
	}
	if list.EstimatedTotal != 0.0 || list.Currency != nil {
		t.Fatalf("expected empty total/currency, got %v / %v", list.EstimatedTotal, list.Currency)
	}
}

func TestShopping_UnitsNeverMerge(t *testing.T) {
	service, scheduleRepo, dishRepo, ingredientRepo := testPlanner(t)
	ctx := context.Background()

	sugar := &ingredient.Ingredient{Name: "Açúcar", Unit: "g", PriceCurrency: "BRL"}
	if err := ingredientRepo.Create(ctx, sugar); err != nil {
		t.Fatal(err)
	}

	d := &dish.Dish{Name: "Bolo"}
	if err := dishRepo.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	if err := dishRepo.ReplaceLines(ctx, d.ID, []*dish.Line{
		{IngredientID: sugar.ID, Amount: 200, Unit: "g"},
		{IngredientID: sugar.ID, Amount: 0.2, Unit: "kg"},
	}); err != nil {
		t.Fatal(err)
	}

	if err := scheduleRepo.EnsureCycle(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := scheduleRepo.UpdateCycleDay(ctx, 1, schedule.SlotRefs{DinnerDishID: &d.ID}); err != nil {
		t.Fatal(err)
	}

	list, err := service.Shopping(ctx, "2024-03-01", "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}

	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items (g and kg kept apart), got %d", len(list.Items))
	}
	// Sorted by (name, unit): "g" before "kg".
	if list.Items[0].Unit != "g" || list.Items[1].Unit != "kg" {
		t.Fatalf("unexpected order: %s, %s", list.Items[0].Unit, list.Items[1].Unit)
	}
}

func TestShopping_Deterministic(t *testing.T) {
	service, scheduleRepo, dishRepo, ingredientRepo := testPlanner(t)
	ctx := context.Background()

	names := []string{"Cebola", "Alho", "Tomate"}
	d := &dish.Dish{Name: "Molho"}
	if err := dishRepo.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	var lines []*dish.Line
	for _, name := range names {
		ing := &ingredient.Ingredient{Name: name, Unit: "unit", UnitPrice: priced(1.5), PriceCurrency: "BRL"}
		if err := ingredientRepo.Create(ctx, ing); err != nil {
			t.Fatal(err)
		}
		lines = append(lines, &dish.Line{IngredientID: ing.ID, Amount: 1, Unit: "unit"})
	}
	if err := dishRepo.ReplaceLines(ctx, d.ID, lines); err != nil {
		t.Fatal(err)
	}

	if err := scheduleRepo.EnsureCycle(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := scheduleRepo.UpdateCycleDay(ctx, 1, schedule.SlotRefs{BreakfastDishID: &d.ID}); err != nil {
		t.Fatal(err)
	}

	first, err := service.Shopping(ctx, "2024-03-01", "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	second, err := service.Shopping(ctx, "2024-03-01", "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("same inputs must produce identical output, item order included")
	}
	if first.Items[0].IngredientName != "Alho" {
		t.Fatalf("expected lexicographic order starting with Alho, got %s", first.Items[0].IngredientName)
	}
}

func TestShopping_OverridePrecedence(t *testing.T) {
	service, scheduleRepo, dishRepo, ingredientRepo := testPlanner(t)
	ctx := context.Background()

	rice := &ingredient.Ingredient{Name: "Arroz", Unit: "g", PriceCurrency: "BRL"}
	if err := ingredientRepo.Create(ctx, rice); err != nil {
		t.Fatal(err)
	}
	d := &dish.Dish{Name: "Arroz de forno"}
	if err := dishRepo.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	if err := dishRepo.ReplaceLines(ctx, d.ID, []*dish.Line{
		{IngredientID: rice.ID, Amount: 300, Unit: "g"},
	}); err != nil {
		t.Fatal(err)
	}

	if err := scheduleRepo.EnsureCycle(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := scheduleRepo.UpdateCycleDay(ctx, 1, schedule.SlotRefs{LunchDishID: &d.ID}); err != nil {
		t.Fatal(err)
	}
	// Empty override for the date: the template lunch must not count.
	if _, err := scheduleRepo.UpsertOverride(ctx, "2024-03-01", schedule.SlotRefs{}); err != nil {
		t.Fatal(err)
	}

	list, err := service.Shopping(ctx, "2024-03-01", "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Items) != 0 {
		t.Fatalf("override blanks the day, expected 0 items, got %d", len(list.Items))
	}
}
