package matching

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Thresholds shared by scoring and reason generation.
const (
	// FlavorReasonDistance is the largest slider gap still reported as a flavor match.
	FlavorReasonDistance = 2
	// FlavorStrong marks an axis value high enough to be worth mentioning.
	FlavorStrong = 7
	// FlavorWeak marks a sweetness low enough to call the variety savory.
	FlavorWeak = 3
	// FlavorScale is the top of every 1..10 attribute scale.
	FlavorScale = 10

	TopMatchPercent  = 80.0
	GoodMatchPercent = 65.0
)

// Weights defines the points each criterion is worth.
type Weights struct {
	Heat             float64 `json:"heat"`
	HeatAdjacent     float64 `json:"heat_adjacent"`
	HeatSoftStep     float64 `json:"heat_soft_step"`
	Type             float64 `json:"type"`
	Container        float64 `json:"container"`
	Difficulty       float64 `json:"difficulty"`
	DifficultyHarder float64 `json:"difficulty_harder"`
	FlavorAxis       float64 `json:"flavor_axis"`
	UseCase          float64 `json:"use_case"`
	Cuisine          float64 `json:"cuisine"`
	GrowthHabit      float64 `json:"growth_habit"`
	Climate          float64 `json:"climate"`
	ClimateAdaptable float64 `json:"climate_adaptable"`
	Availability     float64 `json:"availability"`
	// BaselineFloor is the smallest max score a run can report: the
	// always-on flavor axes plus the availability bonus.
	BaselineFloor float64 `json:"baseline_floor"`
}

// DefaultWeights returns the production point table.
func DefaultWeights() Weights {
	return Weights{
		Heat:             15,
		HeatAdjacent:     8,
		HeatSoftStep:     5,
		Type:             10,
		Container:        10,
		Difficulty:       10,
		DifficultyHarder: 5,
		FlavorAxis:       10,
		UseCase:          15,
		Cuisine:          10,
		GrowthHabit:      10,
		Climate:          15,
		ClimateAdaptable: 8,
		Availability:     5,
		BaselineFloor:    35,
	}
}

// LoadWeightsFromFile loads weights from JSON file; fields missing from the
// file keep their default value.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return DefaultWeights(), fmt.Errorf("unmarshal weights: %w", err)
	}
	if err := w.validate(); err != nil {
		return DefaultWeights(), err
	}
	return w, nil
}

func (w Weights) validate() error {
	if w.FlavorAxis <= 0 || w.BaselineFloor <= 0 {
		return fmt.Errorf("weights: flavor_axis and baseline_floor must be positive")
	}
	if w.HeatAdjacent > w.Heat || w.DifficultyHarder > w.Difficulty || w.ClimateAdaptable > w.Climate {
		return fmt.Errorf("weights: partial credit must not exceed full credit")
	}
	return nil
}
