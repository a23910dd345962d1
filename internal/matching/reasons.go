package matching

import (
	"fmt"
	"strings"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

// MaxReasons caps the reasons attached to one result.
const MaxReasons = 4

// Reasoner explains a match in short phrases.
type Reasoner interface {
	Reasons(item domain.Item, prefs domain.Preferences) []string
}

type ReasonerFunc func(item domain.Item, prefs domain.Preferences) []string

func (f ReasonerFunc) Reasons(item domain.Item, prefs domain.Preferences) []string {
	return f(item, prefs)
}

var heatReasons = map[domain.HeatCategory]string{
	domain.HeatNone:    "No heat (perfect for heat-sensitive eaters)",
	domain.HeatMild:    "Mild heat level",
	domain.HeatMedium:  "Medium heat - nice kick",
	domain.HeatHot:     "Hot and spicy",
	domain.HeatVeryHot: "Very hot - serious heat",
	domain.HeatExtreme: "Extreme heat - for the brave",
}

var useReasons = map[string]string{
	domain.UseFreshEating: "Great for fresh eating",
	domain.UseHotSauce:    "Perfect for hot sauce",
	domain.UseSalsa:       "Ideal for salsa",
	domain.UsePickling:    "Great for pickling",
	domain.UseDrying:      "Excellent for drying",
	domain.UseStuffing:    "Perfect for stuffing",
	domain.UseFermenting:  "Great for fermenting",
	domain.UseRoasting:    "Wonderful roasted",
	domain.UseCooking:     "Versatile for cooking",
}

// DefaultReasoner re-derives which criteria matched closely, independent of
// any scorer, so it works for both strict and soft runs and never fails on
// eliminated items.
type DefaultReasoner struct{}

// Reasons emits phrases in priority order: heat, flavor, use case, growing
// traits, cuisine, climate, availability.
func (DefaultReasoner) Reasons(item domain.Item, prefs domain.Preferences) []string {
	reasons := make([]string, 0, MaxReasons)

	if prefs.HeatCategory.IsSet() && prefs.HeatCategory == item.HeatCategory {
		if label, ok := heatReasons[item.HeatCategory]; ok {
			reasons = append(reasons, label)
		} else {
			reasons = append(reasons, fmt.Sprintf("%s heat level", item.HeatCategory))
		}
	}

	if within(item.Sweetness, prefs.Sweetness) {
		if item.Sweetness >= FlavorStrong {
			reasons = append(reasons, "Sweet flavor profile")
		} else if item.Sweetness <= FlavorWeak {
			reasons = append(reasons, "Savory, not sweet")
		}
	}
	if within(item.Fruitiness, prefs.Fruitiness) && item.Fruitiness >= FlavorStrong {
		reasons = append(reasons, "Fruity notes")
	}
	if within(item.Smokiness, prefs.Smokiness) && item.Smokiness >= FlavorStrong {
		reasons = append(reasons, "Smoky flavor")
	}

	for _, use := range prefs.UseCases {
		if !item.HasUse(use) {
			continue
		}
		if label, ok := useReasons[use]; ok {
			reasons = append(reasons, label)
		} else {
			reasons = append(reasons, "Good for "+strings.ReplaceAll(use, "_", " "))
		}
		break
	}

	if item.Difficulty == domain.DifficultyBeginner {
		reasons = append(reasons, "Easy to grow")
	}
	if prefs.ContainerFriendly && item.ContainerFriendly {
		reasons = append(reasons, "Container friendly")
	}

	if prefs.CuisineSet() && item.HasCuisine(prefs.CuisineStyle) {
		reasons = append(reasons, fmt.Sprintf("Perfect for %s cuisine", prefs.CuisineStyle))
	}

	if prefs.ClimateSuitability.IsSet() && item.ClimateSuitability == prefs.ClimateSuitability {
		reasons = append(reasons, fmt.Sprintf("Well-suited for %s climates", item.ClimateSuitability))
	}

	if item.SeedsAvailable() {
		reasons = append(reasons, "Seeds readily available")
	}

	if len(reasons) > MaxReasons {
		reasons = reasons[:MaxReasons]
	}
	return reasons
}

func within(itemValue, prefValue int) bool {
	return abs(itemValue-prefValue) <= FlavorReasonDistance
}
