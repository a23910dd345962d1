package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/guide"
)

type CompareRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type CompareResponse struct {
	Items []ItemSummary `json:"items"`
	Rows  []CompareRow  `json:"rows"`
}

// handleCompare lays two varieties side by side: GET /compare?ids=3,17.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	raw := strings.Split(r.URL.Query().Get("ids"), ",")
	if len(raw) != 2 {
		writeError(w, http.StatusBadRequest, "invalid_ids", "ids must name exactly two items")
		return
	}

	items := make([]domain.Item, 0, 2)
	for _, v := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_ids", v)
			return
		}
		it, err := s.Items.Get(r.Context(), id)
		if err != nil {
			writeErr(w, r, err)
			return
		}
		items = append(items, it)
	}

	resp := CompareResponse{Rows: compareRows(items)}
	for _, it := range items {
		resp.Items = append(resp.Items, summaryOf(it))
	}
	writeJSON(w, http.StatusOK, resp)
}

func compareRows(items []domain.Item) []CompareRow {
	row := func(label string, f func(domain.Item) string) CompareRow {
		vals := make([]string, len(items))
		for i, it := range items {
			vals[i] = f(it)
		}
		return CompareRow{Label: label, Values: vals}
	}
	rating := func(v int) string {
		return fmt.Sprintf("%s (%d/10)", guide.Stars(v), v)
	}

	return []CompareRow{
		row("Heat Level", func(it domain.Item) string { return heatLabel(it.HeatCategory) }),
		row("SHU Range", func(it domain.Item) string {
			return guide.FormatSHU(it.HeatSHUMin) + " - " + guide.FormatSHU(it.HeatSHUMax)
		}),
		row("Sweetness", func(it domain.Item) string { return rating(it.Sweetness) }),
		row("Fruitiness", func(it domain.Item) string { return rating(it.Fruitiness) }),
		row("Smokiness", func(it domain.Item) string { return rating(it.Smokiness) }),
		row("Type", func(it domain.Item) string { return humanize(string(it.Type)) }),
		row("Growth Habit", func(it domain.Item) string { return humanize(string(it.GrowthHabit)) }),
		row("Days to Maturity", func(it domain.Item) string {
			return fmt.Sprintf("%d-%d days", it.DaysToMaturityMin, it.DaysToMaturityMax)
		}),
		row("Difficulty", func(it domain.Item) string { return humanize(string(it.Difficulty)) }),
		row("Container Friendly", func(it domain.Item) string {
			if it.ContainerFriendly {
				return "Yes"
			}
			return "No"
		}),
		row("Best Uses", func(it domain.Item) string {
			uses := make([]string, len(it.BestUses))
			for i, u := range it.BestUses {
				uses[i] = humanize(u)
			}
			return strings.Join(uses, ", ")
		}),
	}
}

// heatLabel renders a category with one pepper per step above none.
func heatLabel(h domain.HeatCategory) string {
	idx := 0
	for i, c := range domain.HeatCategories {
		if c == h {
			idx = i
		}
	}
	if idx == 0 {
		return humanize(string(h))
	}
	return humanize(string(h)) + " " + strings.Repeat("🌶", idx)
}

// humanize turns enum values like very_hot into "very hot".
func humanize(v string) string {
	return strings.ReplaceAll(strings.TrimSuffix(v, "_type"), "_", " ")
}
