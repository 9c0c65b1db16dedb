package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"azure-cost-planner/internal/catalog"
	"azure-cost-planner/internal/estimate"
	"azure-cost-planner/internal/format"
	"azure-cost-planner/internal/pricing"
	"azure-cost-planner/internal/session"
)

// Handler serves the planner HTTP API.
type Handler struct {
	version  string
	prices   *pricing.Service
	builder  *estimate.Builder
	sessions *session.Store
	logger   *slog.Logger
}

// RegionInfo pairs a region code with its display name.
type RegionInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewHandler builds a Handler bound to the pricing service and session store.
func NewHandler(version string, prices *pricing.Service, sessions *session.Store, logger *slog.Logger) *Handler {
	return &Handler{
		version:  version,
		prices:   prices,
		builder:  estimate.NewBuilder(prices),
		sessions: sessions,
		logger:   logger,
	}
}

// Register wires all API endpoints on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/health", h.health)
	mux.HandleFunc("GET /v1/regions", h.regions)
	mux.HandleFunc("GET /v1/vm-sizes", h.vmSizes)
	mux.HandleFunc("GET /v1/operating-systems", h.operatingSystems)
	mux.HandleFunc("GET /v1/currencies", h.currencies)
	mux.HandleFunc("GET /v1/session", h.session)
	mux.HandleFunc("GET /v1/estimate", h.estimate)
	mux.HandleFunc("GET /v1/compare", h.compare)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"source":  h.prices.SourceName(),
		"version": h.version,
	})
}

func (h *Handler) regions(w http.ResponseWriter, r *http.Request) {
	regions := h.prices.Regions()
	items := make([]RegionInfo, 0, len(regions))
	for _, code := range regions {
		items = append(items, RegionInfo{Code: code, Name: format.RegionName(code)})
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) vmSizes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"items": h.prices.VMSizes()})
}

func (h *Handler) operatingSystems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"items": catalog.OperatingSystems()})
}

func (h *Handler) currencies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"items":   estimate.Currencies(),
		"default": estimate.DefaultCurrency,
	})
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.sessions.Load(r))
}

func (h *Handler) estimate(w http.ResponseWriter, r *http.Request) {
	defaults := h.sessions.Load(r)
	req, err := requestFromQuery(r.URL.Query(), defaults)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	est, err := h.builder.Estimate(req)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	defaults.Update(req)
	h.saveSession(w, r, defaults)
	respondJSON(w, http.StatusOK, est)
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	defaults := h.sessions.Load(r)
	req, err := requestFromQuery(r.URL.Query(), defaults)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	comparison, err := h.builder.Compare(req.VMSize, req.OS, req.Hours, req.Currency)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	// Region is not part of a comparison; keep the stored one.
	req.Region = ""
	defaults.Update(req)
	h.saveSession(w, r, defaults)
	respondJSON(w, http.StatusOK, comparison)
}

func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request, d session.Defaults) {
	if err := h.sessions.Save(w, r, d); err != nil {
		h.logger.Warn("failed to save session", slog.String("error", err.Error()))
	}
}

// requestFromQuery reads the estimate inputs, falling back to the session for absent parameters.
func requestFromQuery(q url.Values, d session.Defaults) (estimate.Request, error) {
	req := d.Request()
	if v := q.Get("region"); v != "" {
		req.Region = v
	}
	if v := q.Get("vmSize"); v != "" {
		req.VMSize = v
	}
	if v := q.Get("os"); v != "" {
		os, err := catalog.ParseOS(v)
		if err != nil {
			return estimate.Request{}, err
		}
		req.OS = os
	}
	if v := q.Get("hours"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return estimate.Request{}, fmt.Errorf("%w: %q is not a number", estimate.ErrInvalidHours, v)
		}
		req.Hours = hours
	}
	if v := q.Get("currency"); v != "" {
		req.Currency = v
	}
	return req, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, estimate.ErrConfigurationNotFound), errors.Is(err, estimate.ErrNoPricingData):
		return http.StatusNotFound
	case errors.Is(err, estimate.ErrInvalidHours), errors.Is(err, estimate.ErrUnknownCurrency), errors.Is(err, catalog.ErrUnknownOS):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
