package matching

import (
	"math"
	"testing"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

func TestStrictScorer_DefaultPreferencesUseBaseline(t *testing.T) {
	s := NewStrictScorer(DefaultWeights())
	res, ok := s.Score(newItem(1, "Jalapeño"), domain.DefaultPreferences())
	if !ok {
		t.Fatal("default preferences must not eliminate")
	}
	// flavor: (10-2) + (10-1) + (10-3) = 24, availability 5
	if res.Score != 29 {
		t.Fatalf("score=%v want=29", res.Score)
	}
	if res.MaxScore != 35 {
		t.Fatalf("max=%v want=35", res.MaxScore)
	}
}

func TestStrictScorer_HeatDistance(t *testing.T) {
	s := NewStrictScorer(DefaultWeights())
	prefs := domain.DefaultPreferences()
	prefs.HeatCategory = domain.HeatHot

	if _, ok := s.Score(newItem(1, "Bell", withHeat(domain.HeatNone)), prefs); ok {
		t.Fatal("hot preference vs none item: want eliminated (distance 3)")
	}

	res, ok := s.Score(newItem(2, "Jalapeño", withHeat(domain.HeatMedium)), prefs)
	if !ok {
		t.Fatal("hot preference vs medium item: want kept (distance 1)")
	}
	if res.Score != 8+24+5 || res.MaxScore != 15+30+5 {
		t.Fatalf("adjacent heat: got %v/%v want 37/50", res.Score, res.MaxScore)
	}

	exact, _ := s.Score(newItem(3, "Cayenne", withHeat(domain.HeatHot)), prefs)
	if exact.Score-res.Score != 7 {
		t.Fatalf("exact heat should earn full 15 points, got delta %v", exact.Score-res.Score)
	}
}

func TestStrictScorer_HardFilters(t *testing.T) {
	s := NewStrictScorer(DefaultWeights())

	tests := []struct {
		name string
		item domain.Item
		mod  func(*domain.Preferences)
		keep bool
	}{
		{"type mismatch", newItem(1, "a"), func(p *domain.Preferences) { p.PepperType = domain.TypeBell }, false},
		{"type match", newItem(1, "a"), func(p *domain.Preferences) { p.PepperType = domain.TypeJalapeno }, true},
		{"container required, item not friendly", newItem(1, "a", func(it *domain.Item) { it.ContainerFriendly = false }),
			func(p *domain.Preferences) { p.ContainerFriendly = true }, false},
		{"container required, item friendly", newItem(1, "a"), func(p *domain.Preferences) { p.ContainerFriendly = true }, true},
		{"two tiers harder", newItem(1, "a", withDifficulty(domain.DifficultyAdvanced)),
			func(p *domain.Preferences) { p.Difficulty = domain.DifficultyBeginner }, false},
		{"one tier harder", newItem(1, "a", withDifficulty(domain.DifficultyIntermediate)),
			func(p *domain.Preferences) { p.Difficulty = domain.DifficultyBeginner }, true},
		{"easier than preferred", newItem(1, "a", withDifficulty(domain.DifficultyBeginner)),
			func(p *domain.Preferences) { p.Difficulty = domain.DifficultyAdvanced }, true},
		{"unknown heat in record", newItem(1, "a", withHeat("scorching")),
			func(p *domain.Preferences) { p.HeatCategory = domain.HeatHot }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := domain.DefaultPreferences()
			tt.mod(&prefs)
			if _, ok := s.Score(tt.item, prefs); ok != tt.keep {
				t.Fatalf("kept=%v want=%v", ok, tt.keep)
			}
		})
	}
}

func TestStrictScorer_DifficultyCredit(t *testing.T) {
	s := NewStrictScorer(DefaultWeights())
	prefs := domain.DefaultPreferences()
	prefs.Difficulty = domain.DifficultyBeginner

	base, _ := s.Score(newItem(1, "a", withDifficulty(domain.DifficultyBeginner)), prefs)
	harder, _ := s.Score(newItem(1, "a", withDifficulty(domain.DifficultyIntermediate)), prefs)
	if base.Score-harder.Score != 5 {
		t.Fatalf("one tier harder should earn half credit, delta=%v", base.Score-harder.Score)
	}
	if base.MaxScore != harder.MaxScore {
		t.Fatalf("max score differs: %v vs %v", base.MaxScore, harder.MaxScore)
	}
}

func TestSoftScorer_NeverEliminates(t *testing.T) {
	s := NewSoftScorer(DefaultWeights())
	for _, it := range sampleCatalog() {
		for _, h := range domain.HeatCategories {
			for _, d := range domain.Difficulties {
				prefs := domain.DefaultPreferences()
				prefs.HeatCategory = h
				prefs.Difficulty = d
				prefs.PepperType = domain.TypeOrnamental
				prefs.ContainerFriendly = true
				prefs.UseCases = []string{"jerk"}
				if _, ok := s.Score(it, prefs); !ok {
					t.Fatalf("soft scorer eliminated %s for heat=%s difficulty=%s", it.Name, h, d)
				}
			}
		}
	}
}

func TestSoftScorer_HeatIsProportional(t *testing.T) {
	s := NewSoftScorer(DefaultWeights())
	prefs := domain.DefaultPreferences()
	prefs.HeatCategory = domain.HeatHot

	var prev float64 = math.Inf(1)
	for _, h := range []domain.HeatCategory{domain.HeatHot, domain.HeatMedium, domain.HeatMild, domain.HeatNone} {
		res, ok := s.Score(newItem(1, "a", withHeat(h)), prefs)
		if !ok {
			t.Fatalf("eliminated at %s", h)
		}
		if res.Score >= prev {
			t.Fatalf("score should fall with heat distance: %s got %v, previous %v", h, res.Score, prev)
		}
		prev = res.Score
	}

	far, _ := s.Score(newItem(1, "a", withHeat(domain.HeatNone)), prefs)
	if far.Score != 24+5 {
		t.Fatalf("distance 3 should earn zero heat points, got total %v", far.Score)
	}
}

func TestSoftCriteria(t *testing.T) {
	s := NewStrictScorer(DefaultWeights())
	base, _ := s.Score(newItem(1, "a"), domain.DefaultPreferences())

	tests := []struct {
		name      string
		item      domain.Item
		mod       func(*domain.Preferences)
		wantDelta float64
		wantMax   float64
	}{
		{"half of use cases", newItem(1, "a"),
			func(p *domain.Preferences) { p.UseCases = []string{domain.UseSalsa, domain.UseDrying} }, 7.5, 15},
		{"all use cases", newItem(1, "a"),
			func(p *domain.Preferences) { p.UseCases = []string{domain.UseSalsa, domain.UsePickling} }, 15, 15},
		{"cuisine match", newItem(1, "a"),
			func(p *domain.Preferences) { p.CuisineStyle = "mexican" }, 10, 10},
		{"cuisine wildcard", newItem(1, "a", func(it *domain.Item) { it.CuisineAffinity = []string{domain.CuisineWildcard} }),
			func(p *domain.Preferences) { p.CuisineStyle = "thai" }, 10, 10},
		{"cuisine miss", newItem(1, "a"),
			func(p *domain.Preferences) { p.CuisineStyle = "korean" }, 0, 10},
		{"climate exact", newItem(1, "a"),
			func(p *domain.Preferences) { p.ClimateSuitability = domain.ClimateTemperate }, 15, 15},
		{"climate adaptable", newItem(1, "a"),
			func(p *domain.Preferences) { p.ClimateSuitability = domain.ClimateHot }, 8, 15},
		{"climate miss", newItem(1, "a", func(it *domain.Item) { it.ClimateSuitability = domain.ClimateCool }),
			func(p *domain.Preferences) { p.ClimateSuitability = domain.ClimateHot }, 0, 15},
		{"growth habit", newItem(1, "a"),
			func(p *domain.Preferences) { p.GrowthHabit = domain.HabitBushy }, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := domain.DefaultPreferences()
			tt.mod(&prefs)
			res, ok := s.Score(tt.item, prefs)
			if !ok {
				t.Fatal("soft criterion eliminated item")
			}
			if got := res.Score - base.Score; got != tt.wantDelta {
				t.Fatalf("score delta=%v want=%v", got, tt.wantDelta)
			}
			if got := res.MaxScore - base.MaxScore; got != tt.wantMax {
				t.Fatalf("max delta=%v want=%v", got, tt.wantMax)
			}
		})
	}
}

func TestAvailabilityAlwaysEvaluated(t *testing.T) {
	s := NewStrictScorer(DefaultWeights())
	none := newItem(1, "a", func(it *domain.Item) { it.AvailableFromSeedsNow = false })
	wcs := newItem(2, "b", func(it *domain.Item) {
		it.AvailableFromSeedsNow = false
		it.AvailableFromWestCoastSeeds = true
	})

	a, _ := s.Score(none, domain.DefaultPreferences())
	b, _ := s.Score(wcs, domain.DefaultPreferences())
	if b.Score-a.Score != 5 {
		t.Fatalf("availability bonus delta=%v want=5", b.Score-a.Score)
	}
}

func TestFlavorAxisPoints(t *testing.T) {
	tests := []struct {
		item, pref int
		want       float64
	}{
		{5, 5, 10},
		{1, 10, 1},
		{10, 1, 1},
		{7, 5, 8},
	}
	for _, tt := range tests {
		if got := axisPoints(tt.item, tt.pref, 10); got != tt.want {
			t.Fatalf("axisPoints(%d,%d)=%v want=%v", tt.item, tt.pref, got, tt.want)
		}
	}
}
