package matching

import (
	"math"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

// Result is an additive score and the maximum reachable by the criteria
// that were actually evaluated.
type Result struct {
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
}

func (r *Result) add(points, max float64) {
	r.Score += points
	r.MaxScore += max
}

// Scorer rates one item against preferences. ok is false when the item is
// eliminated by a hard criterion.
type Scorer interface {
	Score(item domain.Item, prefs domain.Preferences) (res Result, ok bool)
}

type ScorerFunc func(item domain.Item, prefs domain.Preferences) (Result, bool)

func (f ScorerFunc) Score(item domain.Item, prefs domain.Preferences) (Result, bool) {
	return f(item, prefs)
}

// StrictScorer treats heat, type, container and difficulty as hard filters
// and everything else as soft bonuses.
type StrictScorer struct {
	W Weights
}

func NewStrictScorer(w Weights) StrictScorer { return StrictScorer{W: w} }

func (s StrictScorer) Score(item domain.Item, prefs domain.Preferences) (Result, bool) {
	w := s.W
	var r Result

	if prefs.HeatCategory.IsSet() {
		d, ok := HeatDistance(prefs.HeatCategory, item.HeatCategory)
		if !ok || d > 1 {
			return Result{}, false
		}
		if d == 0 {
			r.add(w.Heat, w.Heat)
		} else {
			r.add(w.HeatAdjacent, w.Heat)
		}
	}

	if prefs.PepperType.IsSet() {
		if item.Type != prefs.PepperType {
			return Result{}, false
		}
		r.add(w.Type, w.Type)
	}

	if prefs.ContainerFriendly {
		if !item.ContainerFriendly {
			return Result{}, false
		}
		r.add(w.Container, w.Container)
	}

	if prefs.Difficulty.IsSet() {
		// Only eliminates when the item is more than one tier harder.
		gap, ok := DifficultyGap(item.Difficulty, prefs.Difficulty)
		if !ok || gap > 1 {
			return Result{}, false
		}
		if gap <= 0 {
			r.add(w.Difficulty, w.Difficulty)
		} else {
			r.add(w.DifficultyHarder, w.Difficulty)
		}
	}

	scoreSoftCriteria(w, &r, item, prefs)
	return r, true
}

// SoftScorer never eliminates: every criterion, heat and difficulty
// included, contributes proportionally. Used for the browse-all view.
type SoftScorer struct {
	W Weights
}

func NewSoftScorer(w Weights) SoftScorer { return SoftScorer{W: w} }

func (s SoftScorer) Score(item domain.Item, prefs domain.Preferences) (Result, bool) {
	w := s.W
	var r Result

	if prefs.HeatCategory.IsSet() {
		pts := 0.0
		if d, ok := HeatDistance(prefs.HeatCategory, item.HeatCategory); ok {
			pts = math.Max(0, w.Heat-float64(d)*w.HeatSoftStep)
		}
		r.add(pts, w.Heat)
	}

	if prefs.PepperType.IsSet() {
		r.add(pointsIf(item.Type == prefs.PepperType, w.Type), w.Type)
	}

	if prefs.ContainerFriendly {
		r.add(pointsIf(item.ContainerFriendly, w.Container), w.Container)
	}

	if prefs.Difficulty.IsSet() {
		pts := 0.0
		if gap, ok := DifficultyGap(item.Difficulty, prefs.Difficulty); ok {
			switch {
			case gap <= 0:
				pts = w.Difficulty
			case gap == 1:
				pts = w.DifficultyHarder
			}
		}
		r.add(pts, w.Difficulty)
	}

	scoreSoftCriteria(w, &r, item, prefs)
	return r, true
}

// scoreSoftCriteria adds the criteria both scorers share and clamps the max
// score up to the baseline floor.
func scoreSoftCriteria(w Weights, r *Result, item domain.Item, prefs domain.Preferences) {
	// Sliders always carry a value, so the flavor axes are always scored.
	for _, axis := range [][2]int{
		{item.Sweetness, prefs.Sweetness},
		{item.Fruitiness, prefs.Fruitiness},
		{item.Smokiness, prefs.Smokiness},
	} {
		r.add(axisPoints(axis[0], axis[1], w.FlavorAxis), w.FlavorAxis)
	}

	if n := len(prefs.UseCases); n > 0 {
		matched := countMatchingUses(item, prefs.UseCases)
		r.add(math.Min(w.UseCase, float64(matched)/float64(n)*w.UseCase), w.UseCase)
	}

	if prefs.CuisineSet() {
		hit := item.HasCuisine(prefs.CuisineStyle) || item.HasCuisine(domain.CuisineWildcard)
		r.add(pointsIf(hit, w.Cuisine), w.Cuisine)
	}

	if prefs.GrowthHabit.IsSet() {
		r.add(pointsIf(item.GrowthHabit == prefs.GrowthHabit, w.GrowthHabit), w.GrowthHabit)
	}

	if prefs.ClimateSuitability.IsSet() {
		pts := 0.0
		switch {
		case item.ClimateSuitability == prefs.ClimateSuitability:
			pts = w.Climate
		case item.ClimateSuitability == domain.ClimateTemperate:
			pts = w.ClimateAdaptable
		}
		r.add(pts, w.Climate)
	}

	r.add(pointsIf(item.SeedsAvailable(), w.Availability), w.Availability)

	if r.MaxScore < w.BaselineFloor {
		r.MaxScore = w.BaselineFloor
	}
}

// axisPoints scales the 1..10 distance to the configured axis weight:
// with the default weight of 10 this is max(0, 10 - |item - pref|).
func axisPoints(itemValue, prefValue int, weight float64) float64 {
	d := float64(abs(itemValue - prefValue))
	return math.Max(0, weight-d*weight/FlavorScale)
}

func countMatchingUses(item domain.Item, wanted []string) int {
	n := 0
	for _, use := range wanted {
		if item.HasUse(use) {
			n++
		}
	}
	return n
}

func pointsIf(cond bool, pts float64) float64 {
	if cond {
		return pts
	}
	return 0
}
