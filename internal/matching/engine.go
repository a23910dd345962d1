package matching

import (
	"sort"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

// Match scores every item, drops eliminated ones, assigns tiers and reasons,
// and sorts by raw score descending. Equal scores keep catalog order.
// It works the same with any Scorer; the inputs are never modified.
func Match(items []domain.Item, prefs domain.Preferences, scorer Scorer, reasoner Reasoner) []domain.ScoredItem {
	out := make([]domain.ScoredItem, 0, len(items))

	for _, it := range items {
		res, ok := scorer.Score(it, prefs)
		if !ok {
			continue
		}
		pct := percentage(res)
		out = append(out, domain.ScoredItem{
			Item:       it,
			Score:      res.Score,
			MaxScore:   res.MaxScore,
			Percentage: pct,
			Tier:       TierFor(pct),
			Reasons:    reasoner.Reasons(it, prefs),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// TierFor buckets a percentage into a tier.
func TierFor(percentage float64) domain.Tier {
	switch {
	case percentage >= TopMatchPercent:
		return domain.TierTop
	case percentage >= GoodMatchPercent:
		return domain.TierGood
	default:
		return domain.TierWildcard
	}
}

func percentage(r Result) float64 {
	if r.MaxScore <= 0 {
		return 0
	}
	return r.Score / r.MaxScore * 100
}

// Engine binds a weight table to the two scorer variants.
type Engine struct {
	weights  Weights
	strict   StrictScorer
	soft     SoftScorer
	reasoner Reasoner
}

func NewEngine(w Weights) *Engine {
	return &Engine{
		weights:  w,
		strict:   NewStrictScorer(w),
		soft:     NewSoftScorer(w),
		reasoner: DefaultReasoner{},
	}
}

func (e *Engine) Weights() Weights { return e.weights }

// Search runs the strict scorer: hard criteria eliminate items.
func (e *Engine) Search(items []domain.Item, prefs domain.Preferences) []domain.ScoredItem {
	return Match(items, prefs, e.strict, e.reasoner)
}

// Browse runs the soft scorer: every item is returned, ranked.
func (e *Engine) Browse(items []domain.Item, prefs domain.Preferences) []domain.ScoredItem {
	return Match(items, prefs, e.soft, e.reasoner)
}

// TierSummary counts results per tier.
type TierSummary struct {
	Top      int `json:"top"`
	Good     int `json:"good"`
	Wildcard int `json:"wildcard"`
	Total    int `json:"total"`
}

func Summarize(results []domain.ScoredItem) TierSummary {
	var s TierSummary
	for _, r := range results {
		switch r.Tier {
		case domain.TierTop:
			s.Top++
		case domain.TierGood:
			s.Good++
		default:
			s.Wildcard++
		}
	}
	s.Total = len(results)
	return s
}

// Limit returns at most n results; n <= 0 means no limit.
func Limit(results []domain.ScoredItem, n int) []domain.ScoredItem {
	if n <= 0 || len(results) <= n {
		return results
	}
	return results[:n]
}
