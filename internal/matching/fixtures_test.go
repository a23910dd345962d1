package matching

import "github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"

func newItem(id int, name string, mods ...func(*domain.Item)) domain.Item {
	it := domain.Item{
		ID:                    id,
		Name:                  name,
		Type:                  domain.TypeJalapeno,
		HeatSHUMin:            2500,
		HeatSHUMax:            8000,
		HeatCategory:          domain.HeatMedium,
		Sweetness:             3,
		Fruitiness:            4,
		Smokiness:             2,
		Bitterness:            2,
		Earthiness:            3,
		BestUses:              []string{domain.UseSalsa, domain.UsePickling},
		CuisineAffinity:       []string{"mexican"},
		DaysToMaturityMin:     65,
		DaysToMaturityMax:     80,
		PlantHeightCmMin:      60,
		PlantHeightCmMax:      90,
		GrowthHabit:           domain.HabitBushy,
		YieldLevel:            "high",
		Difficulty:            domain.DifficultyBeginner,
		ClimateSuitability:    domain.ClimateTemperate,
		HeatTolerance:         7,
		ColdTolerance:         4,
		ContainerFriendly:     true,
		WallThickness:         domain.WallMedium,
		ColorStages:           []string{"green", "red"},
		AvailableFromSeedsNow: true,
	}
	for _, m := range mods {
		m(&it)
	}
	return it
}

func withHeat(h domain.HeatCategory) func(*domain.Item) {
	return func(it *domain.Item) { it.HeatCategory = h }
}

func withDifficulty(d domain.Difficulty) func(*domain.Item) {
	return func(it *domain.Item) { it.Difficulty = d }
}

func sampleCatalog() []domain.Item {
	return []domain.Item{
		newItem(1, "Jalapeño"),
		newItem(2, "California Wonder", withHeat(domain.HeatNone), func(it *domain.Item) {
			it.Type = domain.TypeBell
			it.Sweetness = 8
			it.BestUses = []string{domain.UseStuffing, domain.UseFreshEating}
			it.CuisineAffinity = []string{domain.CuisineWildcard}
		}),
		newItem(3, "Habanero", withHeat(domain.HeatVeryHot), withDifficulty(domain.DifficultyIntermediate), func(it *domain.Item) {
			it.Type = domain.TypeHabanero
			it.Fruitiness = 9
			it.BestUses = []string{domain.UseHotSauce}
			it.CuisineAffinity = []string{"caribbean"}
			it.ClimateSuitability = domain.ClimateHot
			it.AvailableFromSeedsNow = false
		}),
		newItem(4, "Carolina Reaper", withHeat(domain.HeatExtreme), withDifficulty(domain.DifficultyAdvanced), func(it *domain.Item) {
			it.Type = domain.TypeHabanero
			it.GrowthHabit = domain.HabitTall
			it.ContainerFriendly = false
			it.ClimateSuitability = domain.ClimateHot
			it.AvailableFromSeedsNow = false
			it.AvailableFromWestCoastSeeds = true
		}),
		newItem(5, "Thai Chili", withHeat(domain.HeatHot), func(it *domain.Item) {
			it.Type = domain.TypeThai
			it.GrowthHabit = domain.HabitCompact
			it.BestUses = []string{domain.UseDrying, domain.UseCooking}
			it.CuisineAffinity = []string{"thai"}
			it.ClimateSuitability = domain.ClimateHot
		}),
	}
}
