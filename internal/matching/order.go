package matching

import "github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"

var (
	heatIndex       = indexTable(domain.HeatCategories)
	difficultyIndex = indexTable(domain.Difficulties)
)

func indexTable[T comparable](order []T) map[T]int {
	m := make(map[T]int, len(order))
	for i, v := range order {
		m[v] = i
	}
	return m
}

// HeatIndex returns the position of h in the mild-to-hot order.
func HeatIndex(h domain.HeatCategory) (int, bool) {
	i, ok := heatIndex[h]
	return i, ok
}

// DifficultyIndex returns the position of d in the easy-to-hard order.
func DifficultyIndex(d domain.Difficulty) (int, bool) {
	i, ok := difficultyIndex[d]
	return i, ok
}

// HeatDistance is the absolute order distance between two heat levels.
// ok is false when either value is outside the table.
func HeatDistance(a, b domain.HeatCategory) (int, bool) {
	ia, okA := HeatIndex(a)
	ib, okB := HeatIndex(b)
	if !okA || !okB {
		return 0, false
	}
	return abs(ia - ib), true
}

// DifficultyGap is how many tiers harder item is than pref (negative when easier).
func DifficultyGap(item, pref domain.Difficulty) (int, bool) {
	ii, okI := DifficultyIndex(item)
	ip, okP := DifficultyIndex(pref)
	if !okI || !okP {
		return 0, false
	}
	return ii - ip, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
