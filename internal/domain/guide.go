package domain

type Tip struct {
	Text              string `json:"text"`
	IsVarietySpecific bool   `json:"is_variety_specific"`
}

type PriceTier string

const (
	PriceLow  PriceTier = "low"
	PriceMid  PriceTier = "mid"
	PriceHigh PriceTier = "high"
)

type ProductRecommendation struct {
	ID           string    `json:"id" yaml:"id"`
	Category     string    `json:"category" yaml:"category"`
	Name         string    `json:"name" yaml:"name"`
	Reason       string    `json:"reason" yaml:"-"`
	AffiliateURL string    `json:"affiliate_url,omitempty" yaml:"affiliate_url"`
	PriceRange   string    `json:"price_range,omitempty" yaml:"price_range"`
	PriceTier    PriceTier `json:"price_tier,omitempty" yaml:"price_tier"`
}

// Stage is one lifecycle phase of a growing guide. ID is stable across
// generations so callers can key UI state on it.
type Stage struct {
	ID          string                  `json:"id"`
	StageNumber int                     `json:"stage_number"`
	Title       string                  `json:"title"`
	Subtitle    string                  `json:"subtitle"`
	Paragraphs  []string                `json:"paragraphs"`
	Tips        []Tip                   `json:"tips"`
	Products    []ProductRecommendation `json:"products"`
}

type Guide struct {
	VarietyName string  `json:"variety_name"`
	Stages      []Stage `json:"stages"`
}

// PreferenceOverride is a partial Preferences; nil fields keep the base value.
type PreferenceOverride struct {
	HeatCategory       *HeatCategory `json:"heat_category,omitempty" yaml:"heat_category"`
	Sweetness          *int          `json:"sweetness,omitempty" yaml:"sweetness"`
	Fruitiness         *int          `json:"fruitiness,omitempty" yaml:"fruitiness"`
	Smokiness          *int          `json:"smokiness,omitempty" yaml:"smokiness"`
	PepperType         *PepperType   `json:"pepper_type,omitempty" yaml:"pepper_type"`
	UseCases           []string      `json:"use_cases,omitempty" yaml:"use_cases"`
	CuisineStyle       *string       `json:"cuisine_style,omitempty" yaml:"cuisine_style"`
	GrowthHabit        *GrowthHabit  `json:"growth_habit,omitempty" yaml:"growth_habit"`
	ClimateSuitability *Climate      `json:"climate_suitability,omitempty" yaml:"climate_suitability"`
	ContainerFriendly  *bool         `json:"container_friendly,omitempty" yaml:"container_friendly"`
	Difficulty         *Difficulty   `json:"difficulty,omitempty" yaml:"difficulty"`
}

type Preset struct {
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Preset      PreferenceOverride `json:"preset"`
}

type AffiliateLink struct {
	Vendor string `json:"vendor" yaml:"vendor" validate:"required"`
	URL    string `json:"url" yaml:"url" validate:"required"`
	Region Region `json:"region" yaml:"region" validate:"enum"`
}
