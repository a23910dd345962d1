package domain

// Item is one catalog variety. Records are loaded once and never mutated;
// match results wrap a copy in ScoredItem instead of annotating the record.
type Item struct {
	ID             int          `json:"id" yaml:"id" validate:"gt=0"`
	Name           string       `json:"name" yaml:"name" validate:"required"`
	AlternateNames string       `json:"alternate_names" yaml:"alternate_names"`
	Species        string       `json:"species" yaml:"species"`
	Type           PepperType   `json:"type" yaml:"type" validate:"enum"`
	Description    string       `json:"description" yaml:"description"`
	HeatSHUMin     int          `json:"heat_shu_min" yaml:"heat_shu_min" validate:"gte=0"`
	HeatSHUMax     int          `json:"heat_shu_max" yaml:"heat_shu_max" validate:"gtefield=HeatSHUMin"`
	HeatCategory   HeatCategory `json:"heat_category" yaml:"heat_category" validate:"enum"`

	Sweetness  int `json:"sweetness" yaml:"sweetness" validate:"min=1,max=10"`
	Fruitiness int `json:"fruitiness" yaml:"fruitiness" validate:"min=1,max=10"`
	Smokiness  int `json:"smokiness" yaml:"smokiness" validate:"min=1,max=10"`
	Bitterness int `json:"bitterness" yaml:"bitterness" validate:"min=1,max=10"`
	Earthiness int `json:"earthiness" yaml:"earthiness" validate:"min=1,max=10"`

	BestUses        []string `json:"best_uses" yaml:"best_uses"`
	CuisineAffinity []string `json:"cuisine_affinity" yaml:"cuisine_affinity"`

	DaysToMaturityMin int `json:"days_to_maturity_min" yaml:"days_to_maturity_min" validate:"gte=0"`
	DaysToMaturityMax int `json:"days_to_maturity_max" yaml:"days_to_maturity_max" validate:"gtefield=DaysToMaturityMin"`
	PlantHeightCmMin  int `json:"plant_height_cm_min" yaml:"plant_height_cm_min" validate:"gte=0"`
	PlantHeightCmMax  int `json:"plant_height_cm_max" yaml:"plant_height_cm_max" validate:"gtefield=PlantHeightCmMin"`

	GrowthHabit        GrowthHabit `json:"growth_habit" yaml:"growth_habit" validate:"enum"`
	YieldLevel         string      `json:"yield_level" yaml:"yield_level" validate:"omitempty,oneof=low medium high"`
	Difficulty         Difficulty  `json:"difficulty" yaml:"difficulty" validate:"enum"`
	ClimateSuitability Climate     `json:"climate_suitability" yaml:"climate_suitability" validate:"enum"`
	HeatTolerance      int         `json:"heat_tolerance" yaml:"heat_tolerance" validate:"min=1,max=10"`
	ColdTolerance      int         `json:"cold_tolerance" yaml:"cold_tolerance" validate:"min=1,max=10"`

	ContainerFriendly     bool `json:"container_friendly" yaml:"container_friendly"`
	MinPotLiters          *int `json:"min_pot_liters" yaml:"min_pot_liters" validate:"omitempty,gt=0"`
	IndoorSuitable        bool `json:"indoor_suitable" yaml:"indoor_suitable"`
	GreenhouseRecommended bool `json:"greenhouse_recommended" yaml:"greenhouse_recommended"`

	LengthCmMin   int           `json:"length_cm_min" yaml:"length_cm_min" validate:"gte=0"`
	LengthCmMax   int           `json:"length_cm_max" yaml:"length_cm_max" validate:"gtefield=LengthCmMin"`
	WallThickness WallThickness `json:"wall_thickness" yaml:"wall_thickness" validate:"enum"`
	ColorStages   []string      `json:"color_stages" yaml:"color_stages"`
	DiseaseNotes  string        `json:"disease_notes" yaml:"disease_notes"`

	AvailableFromSeedsNow       bool `json:"available_from_seedsnow" yaml:"available_from_seedsnow"`
	AvailableFromWestCoastSeeds bool `json:"available_from_west_coast_seeds" yaml:"available_from_west_coast_seeds"`
}

// SeedsAvailable reports whether any tracked vendor stocks the variety.
func (i Item) SeedsAvailable() bool {
	return i.AvailableFromSeedsNow || i.AvailableFromWestCoastSeeds
}

func (i Item) HasUse(use string) bool {
	return member(i.BestUses, use)
}

func (i Item) HasCuisine(cuisine string) bool {
	return member(i.CuisineAffinity, cuisine)
}

// Preferences mirrors the matchable part of Item. Enum fields accept
// NoPreference; sliders always carry a value.
type Preferences struct {
	HeatCategory       HeatCategory `json:"heat_category" yaml:"heat_category" validate:"enum_or_any"`
	Sweetness          int          `json:"sweetness" yaml:"sweetness" validate:"min=1,max=10"`
	Fruitiness         int          `json:"fruitiness" yaml:"fruitiness" validate:"min=1,max=10"`
	Smokiness          int          `json:"smokiness" yaml:"smokiness" validate:"min=1,max=10"`
	PepperType         PepperType   `json:"pepper_type" yaml:"pepper_type" validate:"enum_or_any"`
	UseCases           []string     `json:"use_cases" yaml:"use_cases"`
	CuisineStyle       string       `json:"cuisine_style" yaml:"cuisine_style"`
	GrowthHabit        GrowthHabit  `json:"growth_habit" yaml:"growth_habit" validate:"enum_or_any"`
	ClimateSuitability Climate      `json:"climate_suitability" yaml:"climate_suitability" validate:"enum_or_any"`
	ContainerFriendly  bool         `json:"container_friendly" yaml:"container_friendly"`
	Difficulty         Difficulty   `json:"difficulty" yaml:"difficulty" validate:"enum_or_any"`
}

// DefaultPreferences is the state of a fresh search form.
func DefaultPreferences() Preferences {
	return Preferences{
		HeatCategory:       HeatAnyLevel,
		Sweetness:          5,
		Fruitiness:         5,
		Smokiness:          5,
		PepperType:         TypeAny,
		UseCases:           []string{},
		CuisineStyle:       NoPreference,
		GrowthHabit:        HabitAny,
		ClimateSuitability: ClimateAny,
		Difficulty:         DifficultyAny,
	}
}

func (p Preferences) CuisineSet() bool { return isSet(p.CuisineStyle) }

type Tier string

const (
	TierTop      Tier = "Top match"
	TierGood     Tier = "Good match"
	TierWildcard Tier = "Wildcard"
)

// ScoredItem is the output of one matching run.
type ScoredItem struct {
	Item       Item     `json:"item"`
	Score      float64  `json:"score"`
	MaxScore   float64  `json:"max_score"`
	Percentage float64  `json:"percentage"`
	Tier       Tier     `json:"tier"`
	Reasons    []string `json:"reasons"`
}
