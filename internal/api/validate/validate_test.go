package validate

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gatherly/gatherly/internal/model"
)

func validActivity() model.Activity {
	return model.Activity{
		ID:          uuid.New(),
		Title:       "Run",
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Description: "morning run",
		Category:    "sport",
		City:        "X",
		Venue:       "Y",
	}
}

func TestValidActivityPasses(t *testing.T) {
	if errs := Activity(validActivity()); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestMissingFieldsAreKeyed(t *testing.T) {
	a := validActivity()
	a.Title = "  "
	a.City = ""
	errs := Activity(a)
	if errs == nil {
		t.Fatal("expected errors")
	}
	if _, ok := errs["title"]; !ok {
		t.Fatalf("expected title error, got %v", errs)
	}
	if _, ok := errs["city"]; !ok {
		t.Fatalf("expected city error, got %v", errs)
	}
	if len(errs) != 2 {
		t.Fatalf("expected exactly two fields, got %v", errs)
	}
}

func TestZeroValueActivityFailsEverything(t *testing.T) {
	errs := Activity(model.Activity{})
	for _, field := range []string{"id", "title", "date", "description", "category", "city", "venue"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected %s error, got %v", field, errs)
		}
	}
}

func TestIDParsing(t *testing.T) {
	want := uuid.New()
	got, errs := ID(want.String())
	if errs != nil || got != want {
		t.Fatalf("unexpected result %v %v", got, errs)
	}

	_, errs = ID("not-a-uuid")
	if errs == nil {
		t.Fatal("expected errors")
	}
	if _, ok := errs["id"]; !ok {
		t.Fatalf("errors must be keyed by id, got %v", errs)
	}
}
