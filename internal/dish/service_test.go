package dish

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"mealcycle/internal/ingredient"
)

// recordingUnlinker captures which dish ids got unlinked from the schedule.
type recordingUnlinker struct {
	unlinked []int64
}

func (r *recordingUnlinker) UnlinkDish(ctx context.Context, dishID int64) error {
	r.unlinked = append(r.unlinked, dishID)
	return nil
}

// fakeStorage pretends to be the object store.
type fakeStorage struct {
	lastKey string
}

func (f *fakeStorage) Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error) {
	f.lastKey = key
	return "https://cdn.example/" + key, nil
}

func testService(t *testing.T) (*Service, *InMemoryRepository, *ingredient.InMemoryRepository, *recordingUnlinker, *fakeStorage) {
	t.Helper()
	repo := NewInMemoryRepository()
	ingredients := ingredient.NewInMemoryRepository()
	unlinker := &recordingUnlinker{}
	store := &fakeStorage{}
	return NewService(repo, ingredients, unlinker, store), repo, ingredients, unlinker, store
}

func TestCreate_Duplicate(t *testing.T) {
	service, _, _, _, _ := testService(t)
	ctx := context.Background()

	if _, err := service.Create(ctx, "Lasanha", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := service.Create(ctx, "Lasanha", "outra"); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestSetComposition_UnitDefaultsToIngredient(t *testing.T) {
	service, _, ingredients, _, _ := testService(t)
	ctx := context.Background()

	egg := &ingredient.Ingredient{Name: "Ovo", Unit: "unit"}
	if err := ingredients.Create(ctx, egg); err != nil {
		t.Fatal(err)
	}

	d, err := service.Create(ctx, "Omelete", "")
	if err != nil {
		t.Fatal(err)
	}

	lines, err := service.SetComposition(ctx, d.ID, []LineInput{
		{IngredientID: egg.ID, Amount: 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Unit != "unit" {
		t.Fatalf("expected unit to fall back to the ingredient's, got %+v", lines)
	}
}

func TestSetComposition_UnknownIngredient(t *testing.T) {
	service, _, _, _, _ := testService(t)
	ctx := context.Background()

	d, err := service.Create(ctx, "Sopa", "")
	if err != nil {
		t.Fatal(err)
	}

	_, err = service.SetComposition(ctx, d.ID, []LineInput{
		{IngredientID: 77, Amount: 1, Unit: "g"},
	})
	if !errors.Is(err, ErrUnknownIngredient) {
		t.Fatalf("expected ErrUnknownIngredient, got %v", err)
	}
}

func TestSetComposition_ReplacesAll(t *testing.T) {
	service, repo, ingredients, _, _ := testService(t)
	ctx := context.Background()

	a := &ingredient.Ingredient{Name: "Arroz", Unit: "g"}
	b := &ingredient.Ingredient{Name: "Feijão", Unit: "g"}
	for _, ing := range []*ingredient.Ingredient{a, b} {
		if err := ingredients.Create(ctx, ing); err != nil {
			t.Fatal(err)
		}
	}

	d, err := service.Create(ctx, "PF", "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := service.SetComposition(ctx, d.ID, []LineInput{
		{IngredientID: a.ID, Amount: 100, Unit: "g"},
		{IngredientID: b.ID, Amount: 80, Unit: "g"},
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := service.SetComposition(ctx, d.ID, []LineInput{
		{IngredientID: a.ID, Amount: 150, Unit: "g"},
	}); err != nil {
		t.Fatal(err)
	}

	lines, err := repo.GetLines(ctx, d.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Amount != 150 {
		t.Fatalf("set must wipe and rewrite, got %+v", lines)
	}
}

func TestDelete_UnlinksSchedule(t *testing.T) {
	service, _, _, unlinker, _ := testService(t)
	ctx := context.Background()

	d, err := service.Create(ctx, "Estrogonofe", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := service.Delete(ctx, d.ID); err != nil {
		t.Fatal(err)
	}

	if len(unlinker.unlinked) != 1 || unlinker.unlinked[0] != d.ID {
		t.Fatalf("schedule slots must be unlinked before removal, got %v", unlinker.unlinked)
	}

	if err := service.Delete(ctx, d.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}

func TestUploadPhoto(t *testing.T) {
	service, repo, _, _, store := testService(t)
	ctx := context.Background()

	d, err := service.Create(ctx, "Pizza", "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := service.UploadPhoto(ctx, d.ID, nil, "menu.exe", ""); err == nil {
		t.Fatal("expected rejection of non-image extension")
	}

	url, err := service.UploadPhoto(ctx, d.ID, nil, "pizza.JPG", "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(store.lastKey, "dishes/") || !strings.HasSuffix(store.lastKey, ".jpg") {
		t.Fatalf("unexpected object key: %s", store.lastKey)
	}

	stored, err := repo.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.PhotoURL == nil || *stored.PhotoURL != url {
		t.Fatalf("photo_url not persisted: %+v", stored.PhotoURL)
	}
}

func TestValidatePhotoExtension(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.jpeg", "c.png", "d.webp", "e.PNG"} {
		if err := ValidatePhotoExtension(name); err != nil {
			t.Errorf("%s should be allowed: %v", name, err)
		}
	}
	for _, name := range []string{"noext", "a.pdf", "b.gif", "c.svg"} {
		if err := ValidatePhotoExtension(name); err == nil {
			t.Errorf("%s should be rejected", name)
		}
	}
}
