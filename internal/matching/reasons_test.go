package matching

import (
	"reflect"
	"slices"
	"testing"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

func TestReasons_PriorityOrderAndCap(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.HeatCategory = domain.HeatMedium
	prefs.Sweetness = 3
	prefs.UseCases = []string{domain.UseSalsa}
	prefs.ContainerFriendly = true
	prefs.CuisineStyle = "mexican"

	got := DefaultReasoner{}.Reasons(newItem(1, "Jalapeño"), prefs)
	want := []string{"Medium heat - nice kick", "Savory, not sweet", "Ideal for salsa", "Easy to grow"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestReasons_UnknownUseFallsBackToReadableLabel(t *testing.T) {
	item := newItem(1, "Scotch Bonnet", func(it *domain.Item) {
		it.BestUses = []string{"jerk_marinade"}
	})
	prefs := domain.DefaultPreferences()
	prefs.UseCases = []string{"jerk_marinade"}

	got := DefaultReasoner{}.Reasons(item, prefs)
	if !slices.Contains(got, "Good for jerk marinade") {
		t.Fatalf("missing fallback use label: %q", got)
	}
}

func TestReasons_FlavorAndCuisine(t *testing.T) {
	item := newItem(1, "Aji Charapita", withDifficulty(domain.DifficultyAdvanced), func(it *domain.Item) {
		it.Sweetness = 5
		it.Fruitiness = 9
		it.Smokiness = 8
		it.CuisineAffinity = []string{"peruvian"}
		it.AvailableFromSeedsNow = false
	})
	prefs := domain.DefaultPreferences()
	prefs.Fruitiness = 8
	prefs.Smokiness = 9
	prefs.CuisineStyle = "peruvian"

	got := DefaultReasoner{}.Reasons(item, prefs)
	want := []string{"Fruity notes", "Smoky flavor", "Perfect for peruvian cuisine"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestReasons_WorksForEliminatedItems(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.HeatCategory = domain.HeatNone
	reaper := sampleCatalog()[3]

	if _, ok := NewStrictScorer(DefaultWeights()).Score(reaper, prefs); ok {
		t.Fatal("expected strict elimination")
	}
	got := DefaultReasoner{}.Reasons(reaper, prefs)
	if len(got) > MaxReasons {
		t.Fatalf("%d reasons", len(got))
	}
	if !slices.Contains(got, "Seeds readily available") {
		t.Fatalf("reasons=%q", got)
	}
}
