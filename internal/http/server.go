package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/cache"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/guide"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/logging"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/matching"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/metrics"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/storage"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/validation"
)

const RequestIDHeader = "X-Request-ID"

type Options struct {
	Guides *guide.Generator
	Links  *storage.LinkDirectory

	CORSOrigins []string
	// RateLimit is requests per RateLimitWindow per client IP; 0 disables it.
	RateLimit       int
	RateLimitWindow time.Duration

	// CacheSize 0 disables the match and guide caches.
	CacheSize int
	CacheTTL  time.Duration
}

type Server struct {
	Engine *matching.Engine
	Items  ItemsRepo
	Guides *guide.Generator
	Links  *storage.LinkDirectory

	opts       Options
	matches    *cache.LRU[uint64, []domain.ScoredItem]
	guideCache *cache.LRU[int, domain.Guide]
}

func NewServer(engine *matching.Engine, items ItemsRepo, opts Options) *Server {
	if engine == nil {
		engine = matching.NewEngine(matching.DefaultWeights())
	}
	if items == nil {
		items = &MemoryItemsRepo{}
	}
	s := &Server{
		Engine: engine,
		Items:  items,
		Guides: opts.Guides,
		Links:  opts.Links,
		opts:   opts,
	}
	if s.Guides == nil {
		s.Guides = guide.NewGenerator(nil)
	}
	if s.Links == nil {
		s.Links = storage.DefaultLinks()
	}
	if opts.CacheSize > 0 {
		s.matches = cache.NewLRU[uint64, []domain.ScoredItem](opts.CacheSize, opts.CacheTTL)
		s.guideCache = cache.NewLRU[int, domain.Guide](opts.CacheSize, opts.CacheTTL)
	}
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	if len(s.opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if s.opts.RateLimit > 0 {
			window := s.opts.RateLimitWindow
			if window <= 0 {
				window = time.Minute
			}
			r.Use(httprate.Limit(s.opts.RateLimit, window, httprate.WithKeyFuncs(httprate.KeyByIP)))
		}
		r.Use(instrument)

		r.Post("/match", s.handleMatch)
		r.Post("/browse", s.handleBrowse)

		r.Get("/items", s.handleItemsList)
		r.Route("/items/{id}", func(r chi.Router) {
			r.Get("/", s.handleItemGet)
			r.Get("/guide", s.handleItemGuide)
			r.Get("/links", s.handleItemLinks)
		})

		r.Get("/presets", s.handlePresetsList)
		r.Get("/presets/{slug}", s.handlePresetGet)

		r.Get("/compare", s.handleCompare)
	})

	return r
}

type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type HealthResponse struct {
	Status string                `json:"status"`
	Caches map[string]CacheStats `json:"caches,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	if s.matches != nil {
		resp.Caches = map[string]CacheStats{}
		h, m, n := s.matches.Stats()
		resp.Caches["match"] = CacheStats{Hits: h, Misses: m, Size: n}
		h, m, n = s.guideCache.Stats()
		resp.Caches["guide"] = CacheStats{Hits: h, Misses: m, Size: n}
	}
	writeJSON(w, http.StatusOK, resp)
}

// requestID attaches the caller's X-Request-ID, or a fresh one, to the
// context and echoes it back.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = logging.GenerateRequestID()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logging.ContextWithRequestID(r.Context(), id)))
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logging.Ctx(r.Context()).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// instrument records request metrics labelled by the chi route pattern so
// item ids do not explode label cardinality.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordAPIRequest(r.Method, route, strconv.Itoa(status), time.Since(start))
	})
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message,omitempty"`
	Details []validation.ValidationError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}

// writeErr maps domain errors onto status codes.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation_failed",
			Message: verr.Error(),
			Details: verr.Errors,
		})
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func itemID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
