package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/lucsky/cuid"
	"github.com/marketlens/marketlens/internal/analytics"
	"github.com/marketlens/marketlens/internal/geo"
	"github.com/marketlens/marketlens/internal/models"
	"github.com/marketlens/marketlens/internal/repositories"
)

func salesFilter(r *http.Request) repositories.SalesFilter {
	filter := repositories.SalesFilter{
		City:      r.URL.Query().Get("city"),
		FromMonth: r.URL.Query().Get("from"),
		ToMonth:   r.URL.Query().Get("to"),
	}
	if channels := r.URL.Query().Get("channels"); channels != "" {
		filter.Channels = strings.Split(channels, ",")
	}
	return filter
}

func cacheKey(r *http.Request) string {
	return r.URL.Path + "?" + r.URL.RawQuery
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, key string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("failed to encode response")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.cache.set(key, data)
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) serveCached(w http.ResponseWriter, key string) bool {
	data, ok := s.cache.get(key)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
	return true
}

func (s *Server) handleChannelSummary(w http.ResponseWriter, r *http.Request) {
	key := cacheKey(r)
	if s.serveCached(w, key) {
		return
	}

	records, err := s.sales.MonthlyRecords(r.Context(), salesFilter(r))
	if err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("warehouse query failed")
		http.Error(w, "data source unavailable", http.StatusBadGateway)
		return
	}

	summary := analytics.ChannelSummary(analytics.AggregateByChannel(records))
	s.track(models.EventTypeQuery, r.URL.Path)
	s.writeJSON(w, r, key, summary)
}

func (s *Server) handleMonthlyMarketShare(w http.ResponseWriter, r *http.Request) {
	key := cacheKey(r)
	if s.serveCached(w, key) {
		return
	}

	records, err := s.sales.MonthlyRecords(r.Context(), salesFilter(r))
	if err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("warehouse query failed")
		http.Error(w, "data source unavailable", http.StatusBadGateway)
		return
	}

	rows := analytics.MarketShareRows(analytics.Aggregate(records, models.DimensionMonth))
	s.track(models.EventTypeQuery, r.URL.Path)
	s.writeJSON(w, r, key, rows)
}

func (s *Server) handleWeeklyMarketShare(w http.ResponseWriter, r *http.Request) {
	key := cacheKey(r)
	if s.serveCached(w, key) {
		return
	}

	records, err := s.sales.WeeklyRecords(r.Context(), salesFilter(r))
	if err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("warehouse query failed")
		http.Error(w, "data source unavailable", http.StatusBadGateway)
		return
	}

	rows := analytics.MarketShareRows(analytics.Aggregate(records, models.DimensionWeek))
	s.track(models.EventTypeQuery, r.URL.Path)
	s.writeJSON(w, r, key, rows)
}

func (s *Server) handleCuisineBreakdown(w http.ResponseWriter, r *http.Request) {
	key := cacheKey(r)
	if s.serveCached(w, key) {
		return
	}

	records, err := s.sales.MonthlyRecords(r.Context(), salesFilter(r))
	if err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("warehouse query failed")
		http.Error(w, "data source unavailable", http.StatusBadGateway)
		return
	}

	rows := analytics.MarketShareRows(analytics.Aggregate(records, models.DimensionCuisine))
	s.track(models.EventTypeQuery, r.URL.Path)
	s.writeJSON(w, r, key, rows)
}

func (s *Server) handleAreaSignals(w http.ResponseWriter, r *http.Request) {
	key := cacheKey(r)
	if s.serveCached(w, key) {
		return
	}

	records, err := s.sales.MonthlyRecords(r.Context(), salesFilter(r))
	if err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("warehouse query failed")
		http.Error(w, "data source unavailable", http.StatusBadGateway)
		return
	}

	signals := analytics.AreaSignals(records, geo.Resolve)
	s.track(models.EventTypeQuery, r.URL.Path)
	s.writeJSON(w, r, key, signals)
}

func (s *Server) handleGeoResolve(w http.ResponseWriter, r *http.Request) {
	area := r.URL.Query().Get("area")
	if area == "" {
		http.Error(w, "missing area", http.StatusBadRequest)
		return
	}
	city := r.URL.Query().Get("city")

	location := geo.Resolve(area, city)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(location)
}

type createUserRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"password_hash"`
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		users, err := s.users.GetAll(r.Context())
		if err != nil {
			s.log.WithRequest(r).WithField("error", err.Error()).Error("listing users failed")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)

	case http.MethodPost:
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Email == "" {
			http.Error(w, "missing email", http.StatusBadRequest)
			return
		}
		role := req.Role
		if role == "" {
			role = models.RoleViewer
		}
		user := &models.DashboardUser{
			ID:           cuid.New(),
			Email:        req.Email,
			Name:         req.Name,
			Role:         role,
			PasswordHash: req.PasswordHash,
			Active:       true,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.users.Create(r.Context(), user); err != nil {
			s.log.WithRequest(r).WithField("error", err.Error()).Error("creating user failed")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.track(models.EventTypeAdminAction, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleUserRole(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" || req.Role == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.users.UpdateRole(r.Context(), req.ID, req.Role); err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("updating role failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.track(models.EventTypeAdminAction, r.URL.Path)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUserDeactivate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.users.Deactivate(r.Context(), req.ID); err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("deactivating user failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.track(models.EventTypeAdminAction, r.URL.Path)
	w.WriteHeader(http.StatusNoContent)
}
