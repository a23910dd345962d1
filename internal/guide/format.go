package guide

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultContainer is recommended when a variety has no minimum pot size.
const DefaultContainer = "5 gallon (19 L)"

const (
	litersPerGallon = 3.8
	cmPerInch       = 2.54
)

// ContainerSize renders a minimum pot size with its gallon equivalent
// rounded up to a whole container.
func ContainerSize(minPotLiters *int) string {
	if minPotLiters == nil {
		return DefaultContainer
	}
	l := *minPotLiters
	return fmt.Sprintf("%d L (%d gallon)", l, int(math.Ceil(float64(l)/litersPerGallon)))
}

func CmToInches(cm int) int {
	return int(math.Round(float64(cm) / cmPerInch))
}

// FormatHeatLevel renders a Scoville range with a unit scaled to its size
// and a qualitative label.
func FormatHeatLevel(minSHU, maxSHU int) string {
	switch {
	case maxSHU == 0:
		return "No heat"
	case maxSHU < 1_000:
		return fmt.Sprintf("%d-%d SHU (Mild)", minSHU, maxSHU)
	case maxSHU < 10_000:
		return fmt.Sprintf("%s-%s SHU (Medium)", thousands(minSHU), thousands(maxSHU))
	case maxSHU < 100_000:
		return fmt.Sprintf("%s-%s SHU (Hot)", thousands(minSHU), thousands(maxSHU))
	case maxSHU < 500_000:
		return fmt.Sprintf("%s-%s SHU (Very Hot)", thousands(minSHU), thousands(maxSHU))
	default:
		return fmt.Sprintf("%s-%s SHU (Extreme)", millions(minSHU), millions(maxSHU))
	}
}

// thousands rounds half away from zero; fmt's %.0f would round half to even.
func thousands(v int) string {
	return fmt.Sprintf("%dK", int(math.Round(float64(v)/1_000)))
}

func millions(v int) string {
	return fmt.Sprintf("%.1fM", math.Round(float64(v)/100_000)/10)
}

// FormatSHU renders a Scoville value with thousands separators.
func FormatSHU(v int) string {
	return humanize.Comma(int64(v))
}

// Stars renders a 1..10 rating as five stars.
func Stars(rating int) string {
	filled := int(math.Round(float64(rating) / 2))
	filled = max(0, min(5, filled))
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}
