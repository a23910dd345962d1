package guide

import (
	"fmt"
	"math"
	"strings"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

const (
	longSeasonDays    = 100
	lateStartDays     = 90
	coldSensitiveMax  = 3
	coldTenderMax     = 4
	coldHardyMin      = 7
	heatHardyMin      = 8
	defaultFinalColor = "red"
)

// traits is everything a stage branches on, derived once per item.
type traits struct {
	name string

	compact  bool
	tall     bool
	superhot bool

	avgMaturity   int
	maturityRange string
	longSeason    bool
	weeksIndoor   string

	containerFriendly bool
	indoor            bool
	greenhouse        bool
	container         string
	spacing           string
	heightCm          [2]int
	heightIn          [2]int

	beginner bool
	advanced bool

	hotClimate    bool
	coldSensitive bool
	coldTender    bool
	coldHardy     bool
	heatHardy     bool

	thickWalls bool
	thinWalls  bool
	highYield  bool

	dries     bool
	sauces    bool
	dehydrate bool

	finalColor string
	colorPath  string

	diseaseNotes string
	shuMin       string
	shuMax       string
}

func deriveTraits(it domain.Item) traits {
	t := traits{
		name:          it.Name,
		compact:       it.GrowthHabit == domain.HabitCompact,
		tall:          it.GrowthHabit == domain.HabitTall,
		superhot:      it.HeatCategory == domain.HeatExtreme || it.HeatCategory == domain.HeatVeryHot,
		avgMaturity:   int(math.Round(float64(it.DaysToMaturityMin+it.DaysToMaturityMax) / 2)),
		maturityRange: fmt.Sprintf("%d-%d", it.DaysToMaturityMin, it.DaysToMaturityMax),
		container:     ContainerSize(it.MinPotLiters),
		heightCm:      [2]int{it.PlantHeightCmMin, it.PlantHeightCmMax},
		heightIn:      [2]int{CmToInches(it.PlantHeightCmMin), CmToInches(it.PlantHeightCmMax)},
		beginner:      it.Difficulty == domain.DifficultyBeginner,
		advanced:      it.Difficulty == domain.DifficultyAdvanced,
		hotClimate:    it.ClimateSuitability == domain.ClimateHot,
		coldSensitive: it.ColdTolerance <= coldSensitiveMax,
		coldTender:    it.ColdTolerance <= coldTenderMax,
		coldHardy:     it.ColdTolerance >= coldHardyMin,
		heatHardy:     it.HeatTolerance >= heatHardyMin,
		thickWalls:    it.WallThickness == domain.WallThick,
		thinWalls:     it.WallThickness == domain.WallThin,
		highYield:     it.YieldLevel == "high",
		dries:         usedFor(it, domain.UseDrying),
		sauces:        usedFor(it, domain.UseHotSauce) || usedFor(it, domain.UseFermenting),
		finalColor:    defaultFinalColor,
		diseaseNotes:  strings.TrimSpace(it.DiseaseNotes),
		shuMin:        FormatSHU(it.HeatSHUMin),
		shuMax:        FormatSHU(it.HeatSHUMax),
	}
	t.containerFriendly = it.ContainerFriendly
	t.indoor = it.IndoorSuitable
	t.greenhouse = it.GreenhouseRecommended
	t.dehydrate = t.dries || usedFor(it, domain.UsePowdered)
	t.longSeason = t.avgMaturity > longSeasonDays

	t.weeksIndoor = "8-10"
	if t.avgMaturity > lateStartDays {
		t.weeksIndoor = "10-12"
	}

	switch {
	case t.compact:
		t.spacing = "12-18 inches (30-45 cm)"
	case t.tall:
		t.spacing = "24-30 inches (60-75 cm)"
	default:
		t.spacing = "18-24 inches (45-60 cm)"
	}

	if n := len(it.ColorStages); n > 0 {
		t.finalColor = it.ColorStages[n-1]
		t.colorPath = strings.Join(it.ColorStages, " → ")
	} else {
		t.colorPath = t.finalColor
	}
	return t
}

// usedFor matches use tags loosely so "drying_whole" still counts as drying.
func usedFor(it domain.Item, use string) bool {
	for _, u := range it.BestUses {
		if strings.Contains(strings.ToLower(u), use) {
			return true
		}
	}
	return false
}
