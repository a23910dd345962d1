package httpapi

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/cache"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/logging"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/matching"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/metrics"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/storage"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/validation"
)

const (
	modeSearch = "search"
	modeBrowse = "browse"
)

// MatchRequest is the body of /match and /browse. Preferences start from
// the defaults, then the preset is applied, then any fields given in
// Preferences win.
type MatchRequest struct {
	Preferences json.RawMessage `json:"preferences"`
	Preset      string          `json:"preset"`
	Limit       int             `json:"limit"`
}

type MatchResponse struct {
	Preferences domain.Preferences   `json:"preferences"`
	Summary     matching.TierSummary `json:"summary"`
	Results     []domain.ScoredItem  `json:"results"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	s.runMatch(w, r, modeSearch)
}

func (s *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	s.runMatch(w, r, modeBrowse)
}

func (s *Server) runMatch(w http.ResponseWriter, r *http.Request, mode string) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	prefs, ok := resolvePreferences(w, req)
	if !ok {
		return
	}
	if err := validation.ValidatePreferences(prefs); err != nil {
		writeErr(w, r, err)
		return
	}

	items, err := s.Items.All(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}

	results, err := s.scored(mode, items, prefs)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("mode", mode).
		Int("catalog", len(items)).
		Int("results", len(results)).
		Msg("match")

	writeJSON(w, http.StatusOK, MatchResponse{
		Preferences: prefs,
		Summary:     matching.Summarize(results),
		Results:     matching.Limit(results, req.Limit),
	})
}

func resolvePreferences(w http.ResponseWriter, req MatchRequest) (domain.Preferences, bool) {
	prefs := domain.DefaultPreferences()
	if req.Preset != "" {
		p, ok := storage.LookupPreset(req.Preset)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown_preset", req.Preset)
			return prefs, false
		}
		prefs = storage.ApplyPreset(prefs, p.Preset)
	}
	if len(req.Preferences) > 0 && string(req.Preferences) != "null" {
		if err := json.Unmarshal(req.Preferences, &prefs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_preferences", err.Error())
			return prefs, false
		}
	}
	if prefs.UseCases == nil {
		prefs.UseCases = []string{}
	}
	return prefs, true
}

// scored runs the engine, memoizing full result lists by mode and
// preferences. The catalog is read-only for the life of the server.
func (s *Server) scored(mode string, items []domain.Item, prefs domain.Preferences) ([]domain.ScoredItem, error) {
	run := func() []domain.ScoredItem {
		start := time.Now()
		var out []domain.ScoredItem
		if mode == modeBrowse {
			out = s.Engine.Browse(items, prefs)
		} else {
			out = s.Engine.Search(items, prefs)
		}
		metrics.RecordMatch(mode, len(items), len(out), time.Since(start))
		return out
	}

	if s.matches == nil {
		return run(), nil
	}
	key, err := json.Marshal(prefs)
	if err != nil {
		return nil, err
	}
	out, hit := s.matches.GetOrAdd(cache.Key([]byte(mode), key), run)
	metrics.RecordCache("match", hit)
	return out, nil
}

// ---- Catalog ----

type ItemSummary struct {
	ID                int                 `json:"id"`
	Name              string              `json:"name"`
	Type              domain.PepperType   `json:"type"`
	HeatCategory      domain.HeatCategory `json:"heat_category"`
	HeatSHUMin        int                 `json:"heat_shu_min"`
	HeatSHUMax        int                 `json:"heat_shu_max"`
	Difficulty        domain.Difficulty   `json:"difficulty"`
	ContainerFriendly bool                `json:"container_friendly"`
	DaysToMaturityMin int                 `json:"days_to_maturity_min"`
	DaysToMaturityMax int                 `json:"days_to_maturity_max"`
}

func summaryOf(it domain.Item) ItemSummary {
	return ItemSummary{
		ID:                it.ID,
		Name:              it.Name,
		Type:              it.Type,
		HeatCategory:      it.HeatCategory,
		HeatSHUMin:        it.HeatSHUMin,
		HeatSHUMax:        it.HeatSHUMax,
		Difficulty:        it.Difficulty,
		ContainerFriendly: it.ContainerFriendly,
		DaysToMaturityMin: it.DaysToMaturityMin,
		DaysToMaturityMax: it.DaysToMaturityMax,
	}
}

type ItemsListResponse struct {
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Total  int           `json:"total"`
	Items  []ItemSummary `json:"items"`
}

func (s *Server) handleItemsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)

	q := r.URL.Query()
	f := storage.ItemFilter{
		Heat:          domain.HeatCategory(q.Get("heat")),
		Type:          domain.PepperType(q.Get("type")),
		ContainerOnly: q.Get("container") == "true" || q.Get("container") == "1",
		Sort:          q.Get("sort"),
	}
	if f.Heat != "" && !f.Heat.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_heat", string(f.Heat))
		return
	}
	if f.Type != "" && !f.Type.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_type", string(f.Type))
		return
	}

	items, total, err := s.Items.List(r.Context(), ListParams{Limit: limit, Offset: offset, Filter: f})
	if err != nil {
		writeErr(w, r, err)
		return
	}

	out := make([]ItemSummary, 0, len(items))
	for _, it := range items {
		out = append(out, summaryOf(it))
	}

	writeJSON(w, http.StatusOK, ItemsListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  out,
	})
}

// loadItem writes the error response itself when it returns false.
func (s *Server) loadItem(w http.ResponseWriter, r *http.Request) (domain.Item, bool) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", chi.URLParam(r, "id"))
		return domain.Item{}, false
	}
	it, err := s.Items.Get(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return domain.Item{}, false
	}
	return it, true
}

func (s *Server) handleItemGet(w http.ResponseWriter, r *http.Request) {
	it, ok := s.loadItem(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleItemGuide(w http.ResponseWriter, r *http.Request) {
	it, ok := s.loadItem(w, r)
	if !ok {
		return
	}

	gen := func() domain.Guide {
		metrics.GuideGenerations.Inc()
		return s.Guides.Generate(it)
	}
	var g domain.Guide
	if s.guideCache == nil {
		g = gen()
	} else {
		var hit bool
		g, hit = s.guideCache.GetOrAdd(it.ID, gen)
		metrics.RecordCache("guide", hit)
	}
	writeJSON(w, http.StatusOK, g)
}

type LinksResponse struct {
	ItemID int                    `json:"item_id"`
	Name   string                 `json:"name"`
	Region domain.Region          `json:"region,omitempty"`
	Links  []domain.AffiliateLink `json:"links"`
}

func (s *Server) handleItemLinks(w http.ResponseWriter, r *http.Request) {
	region := domain.Region(r.URL.Query().Get("region"))
	if region != "" && !region.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_region", string(region))
		return
	}

	it, ok := s.loadItem(w, r)
	if !ok {
		return
	}

	var found []domain.AffiliateLink
	if region == "" {
		found = s.Links.Lookup(it.Name)
	} else {
		found = s.Links.LookupRegion(it.Name, region)
	}

	links := make([]domain.AffiliateLink, 0, len(found))
	for _, l := range found {
		if !validation.IsHTTPURL(l.URL) {
			logging.Ctx(r.Context()).Warn().Str("variety", it.Name).Str("url", l.URL).Msg("skipping invalid affiliate url")
			continue
		}
		links = append(links, l)
	}

	writeJSON(w, http.StatusOK, LinksResponse{ItemID: it.ID, Name: it.Name, Region: region, Links: links})
}

// ---- Presets ----

type PresetResponse struct {
	domain.Preset
	Preferences domain.Preferences `json:"preferences"`
}

func (s *Server) handlePresetsList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"presets": storage.Presets()})
}

func (s *Server) handlePresetGet(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, ok := storage.LookupPreset(slug)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "preset "+slug)
		return
	}
	writeJSON(w, http.StatusOK, PresetResponse{
		Preset:      p,
		Preferences: storage.ApplyPreset(domain.DefaultPreferences(), p.Preset),
	})
}
