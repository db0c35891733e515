package listing

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"EstateCatalog/pkg/kit"
)

const maxCreateBody = 1 << 20

// Server owns the HTTP surface over a Store. The engine underneath is
// single-caller; the server's lock makes the HTTP layer be that
// caller.
type Server struct {
	mu    sync.RWMutex
	Store Store
	Log   *zap.Logger
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	out := snapshot(s.Store.ListAll())
	s.mu.RUnlock()

	kit.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) sorted(w http.ResponseWriter, r *http.Request) {
	ascending, err := parseOrder(r.URL.Query().Get("order"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "order must be asc or desc", nil)
		return
	}

	s.mu.RLock()
	out := s.Store.SortByPrice(ascending)
	s.mu.RUnlock()

	kit.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if loc := q.Get("location"); loc != "" {
		s.mu.RLock()
		out := snapshot(s.Store.SearchByLocation(loc))
		s.mu.RUnlock()

		kit.WriteJSON(w, http.StatusOK, out)
		return
	}

	if q.Has("min_price") || q.Has("max_price") {
		s.searchPriceRange(w, r)
		return
	}

	kit.WriteError(w, r, http.StatusBadRequest, "location or min_price/max_price required", nil)
}

// searchPriceRange owns the numeric validation the engine does not do:
// the core only ever sees a well-formed min <= max pair.
func (s *Server) searchPriceRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	min, err := parsePrice(q.Get("min_price"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad min_price", nil)
		return
	}
	max, err := parsePrice(q.Get("max_price"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad max_price", nil)
		return
	}
	if min > max {
		kit.WriteError(w, r, http.StatusBadRequest, "min_price greater than max_price", nil)
		return
	}

	s.mu.RLock()
	out := snapshot(s.Store.SearchByPriceRange(min, max))
	s.mu.RUnlock()

	kit.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	s.mu.RLock()
	l, ok := s.Store.Get(id)
	s.mu.RUnlock()

	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}

	kit.WriteJSON(w, http.StatusOK, l)
}

type createReq struct {
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

var (
	errTitleRequired    = errors.New("title required")
	errLocationRequired = errors.New("location required")
	errCategoryRequired = errors.New("category required")
	errBadPrice         = errors.New("price must be a non-negative number")
)

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateRequest(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if err := validateCreate(req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	s.mu.Lock()
	id := s.Store.Add(req.Title, req.Location, req.Price, req.Category)
	l, _ := s.Store.Get(id)
	s.mu.Unlock()

	if s.Log != nil {
		caller, _ := CallerFromContext(r.Context())
		s.Log.Info("listing created",
			zap.Int64("id", id),
			zap.String("location", req.Location),
			zap.String("caller", caller.Subject),
		)
	}

	kit.WriteJSON(w, http.StatusCreated, l)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	s.mu.Lock()
	found := s.Store.Delete(id)
	s.mu.Unlock()

	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}

	if s.Log != nil {
		caller, _ := CallerFromContext(r.Context())
		s.Log.Info("listing deleted", zap.Int64("id", id), zap.String("caller", caller.Subject))
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeCreateRequest(w http.ResponseWriter, r *http.Request) (createReq, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCreateBody)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req createReq
	if err := dec.Decode(&req); err != nil {
		return createReq{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return createReq{}, errors.New("extra data after json object")
	}

	return req, nil
}

func validateCreate(req createReq) error {
	if strings.TrimSpace(req.Title) == "" {
		return errTitleRequired
	}
	if strings.TrimSpace(req.Location) == "" {
		return errLocationRequired
	}
	if strings.TrimSpace(req.Category) == "" {
		return errCategoryRequired
	}
	if req.Price < 0 || math.IsNaN(req.Price) || math.IsInf(req.Price, 0) {
		return errBadPrice
	}
	return nil
}

func parseOrder(order string) (ascending bool, err error) {
	switch order {
	case "", "asc":
		return true, nil
	case "desc":
		return false, nil
	default:
		return false, errors.New("bad order")
	}
}

func parsePrice(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errBadPrice
	}
	return v, nil
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// snapshot copies a view so callers never hold a slice the engine may
// rewrite after the lock is released. Always non-nil, so empty results
// render as [] rather than null.
func snapshot(items []*Listing) []*Listing {
	out := make([]*Listing, len(items))
	copy(out, items)
	return out
}
