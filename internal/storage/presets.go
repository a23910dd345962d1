package storage

import (
	"slices"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

func ptr[T any](v T) *T { return &v }

var presets = []domain.Preset{
	{
		Slug:        "mild-peppers-for-beginners",
		Title:       "Best Mild Peppers for Beginners",
		Description: "Easy-to-grow mild peppers perfect for new gardeners",
		Preset:      domain.PreferenceOverride{HeatCategory: ptr(domain.HeatMild), Difficulty: ptr(domain.DifficultyBeginner)},
	},
	{
		Slug:        "hot-sauce-peppers",
		Title:       "Best Peppers for Hot Sauce",
		Description: "Top pepper varieties for making homemade hot sauce",
		Preset:      domain.PreferenceOverride{UseCases: []string{domain.UseHotSauce}, HeatCategory: ptr(domain.HeatHot)},
	},
	{
		Slug:        "container-peppers",
		Title:       "Best Peppers for Containers",
		Description: "Compact pepper varieties perfect for pots and small spaces",
		Preset:      domain.PreferenceOverride{ContainerFriendly: ptr(true)},
	},
	{
		Slug:        "sweet-peppers",
		Title:       "Best Sweet Peppers",
		Description: "Delicious sweet peppers with no heat",
		Preset:      domain.PreferenceOverride{HeatCategory: ptr(domain.HeatNone), Sweetness: ptr(8)},
	},
	{
		Slug:        "mexican-cuisine-peppers",
		Title:       "Best Peppers for Mexican Cooking",
		Description: "Authentic peppers for Mexican and Tex-Mex dishes",
		Preset:      domain.PreferenceOverride{CuisineStyle: ptr("mexican")},
	},
	{
		Slug:        "asian-cuisine-peppers",
		Title:       "Best Peppers for Asian Cooking",
		Description: "Peppers perfect for Thai, Korean, and Chinese dishes",
		Preset:      domain.PreferenceOverride{CuisineStyle: ptr("thai")},
	},
	{
		Slug:        "super-hot-peppers",
		Title:       "World's Hottest Peppers",
		Description: "Extreme heat peppers for the brave",
		Preset:      domain.PreferenceOverride{HeatCategory: ptr(domain.HeatExtreme)},
	},
	{
		Slug:        "stuffing-peppers",
		Title:       "Best Peppers for Stuffing",
		Description: "Large, thick-walled peppers perfect for stuffing",
		Preset:      domain.PreferenceOverride{UseCases: []string{domain.UseStuffing}},
	},
	{
		Slug:        "pickling-peppers",
		Title:       "Best Peppers for Pickling",
		Description: "Top varieties for pickled peppers and preserves",
		Preset:      domain.PreferenceOverride{UseCases: []string{domain.UsePickling}},
	},
	{
		Slug:        "salsa-peppers",
		Title:       "Best Peppers for Salsa",
		Description: "Perfect peppers for fresh and cooked salsas",
		Preset:      domain.PreferenceOverride{UseCases: []string{domain.UseSalsa}},
	},
}

// Presets returns the landing-page search profiles.
// Presets returns deep copies; callers may modify them freely.
func Presets() []domain.Preset {
	out := make([]domain.Preset, len(presets))
	for i, p := range presets {
		out[i] = clonePreset(p)
	}
	return out
}

func LookupPreset(slug string) (domain.Preset, bool) {
	i := slices.IndexFunc(presets, func(p domain.Preset) bool { return p.Slug == slug })
	if i < 0 {
		return domain.Preset{}, false
	}
	return clonePreset(presets[i]), true
}

func clonePreset(p domain.Preset) domain.Preset {
	o := &p.Preset
	o.HeatCategory = clonePtr(o.HeatCategory)
	o.Sweetness = clonePtr(o.Sweetness)
	o.Fruitiness = clonePtr(o.Fruitiness)
	o.Smokiness = clonePtr(o.Smokiness)
	o.PepperType = clonePtr(o.PepperType)
	o.UseCases = slices.Clone(o.UseCases)
	o.CuisineStyle = clonePtr(o.CuisineStyle)
	o.GrowthHabit = clonePtr(o.GrowthHabit)
	o.ClimateSuitability = clonePtr(o.ClimateSuitability)
	o.ContainerFriendly = clonePtr(o.ContainerFriendly)
	o.Difficulty = clonePtr(o.Difficulty)
	return p
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	return ptr(*v)
}

// ApplyPreset overlays the set fields of o onto base. base is not modified.
func ApplyPreset(base domain.Preferences, o domain.PreferenceOverride) domain.Preferences {
	out := base
	out.UseCases = slices.Clone(base.UseCases)

	if o.HeatCategory != nil {
		out.HeatCategory = *o.HeatCategory
	}
	if o.Sweetness != nil {
		out.Sweetness = *o.Sweetness
	}
	if o.Fruitiness != nil {
		out.Fruitiness = *o.Fruitiness
	}
	if o.Smokiness != nil {
		out.Smokiness = *o.Smokiness
	}
	if o.PepperType != nil {
		out.PepperType = *o.PepperType
	}
	if o.UseCases != nil {
		out.UseCases = slices.Clone(o.UseCases)
	}
	if o.CuisineStyle != nil {
		out.CuisineStyle = *o.CuisineStyle
	}
	if o.GrowthHabit != nil {
		out.GrowthHabit = *o.GrowthHabit
	}
	if o.ClimateSuitability != nil {
		out.ClimateSuitability = *o.ClimateSuitability
	}
	if o.ContainerFriendly != nil {
		out.ContainerFriendly = *o.ContainerFriendly
	}
	if o.Difficulty != nil {
		out.Difficulty = *o.Difficulty
	}
	return out
}
