package api

import (
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/starchart/starchart/internal/core/domain"
	"github.com/starchart/starchart/internal/core/ports"
	"github.com/starchart/starchart/internal/core/services"
)

// APIHandler handles HTTP requests for a user's domains and records.
type APIHandler struct {
	svc    ports.DomainService
	users  ports.UserRepository
	logger *slog.Logger
}

// NewAPIHandler creates and returns a new APIHandler instance.
func NewAPIHandler(svc ports.DomainService, users ports.UserRepository, logger *slog.Logger) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIHandler{svc: svc, users: users, logger: logger}
}

// RegisterRoutes registers the API routes with the provided ServeMux.
func (h *APIHandler) RegisterRoutes(mux *http.ServeMux) {
	// Public Routes
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("GET /metrics", h.Metrics)
	mux.HandleFunc("GET /redirect", h.Redirect)

	// Middleware
	auth := AuthMiddleware(h.users)
	admin := RequireRole(domain.RoleAdmin)

	// Protected Routes (scoped by the key owner's username)
	mux.Handle("GET /me", auth(http.HandlerFunc(h.Me)))
	mux.Handle("GET /domains", auth(http.HandlerFunc(h.BaseDomain)))
	mux.Handle("GET /domains/resolve", auth(http.HandlerFunc(h.ResolveDomain)))
	mux.Handle("GET /records", auth(http.HandlerFunc(h.ListRecords)))
	mux.Handle("POST /records", auth(admin(http.HandlerFunc(h.CreateRecord))))
	mux.Handle("DELETE /records/{id}", auth(admin(http.HandlerFunc(h.DeleteRecord))))
	mux.Handle("GET /jobs/{queue}/{id}/children", auth(http.HandlerFunc(h.JobChildren)))
}

// Metrics handles Prometheus metrics scraping requests.
func (h *APIHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// HealthCheck handles health check requests.
func (h *APIHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	details := make(map[string]string)

	for name, checkErr := range h.svc.HealthCheck(r.Context()) {
		if checkErr != nil {
			status = "DEGRADED"
			details[name] = checkErr.Error()
		} else {
			details[name] = "OK"
		}
	}

	code := http.StatusOK
	if status == "DEGRADED" {
		code = http.StatusServiceUnavailable
	}
	h.writeJSON(w, code, map[string]interface{}{
		"status":  status,
		"details": details,
	})
}

// Redirect sends the client to a local path taken from ?to=, never off-site.
func (h *APIHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	target := SafeRedirect(r.URL.Query().Get("to"), DefaultRedirect)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *APIHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

func (h *APIHandler) BaseDomain(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"username":    user.Username,
		"base_domain": h.svc.BaseDomain(user.Username),
	})
}

func (h *APIHandler) ResolveDomain(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	fqdn := r.URL.Query().Get("fqdn")
	if fqdn == "" {
		writeError(w, http.StatusBadRequest, "fqdn query parameter is required")
		return
	}

	info, err := h.svc.Describe(r.Context(), user.Username, fqdn)
	if errors.Is(err, domain.ErrInvalidDomain) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.internalError(w, "ResolveDomain", err)
		return
	}
	h.writeJSON(w, http.StatusOK, info)
}

func (h *APIHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	records, err := h.svc.ListRecords(r.Context(), user.Username)
	if err != nil {
		h.internalError(w, "ListRecords", err)
		return
	}
	if records == nil {
		records = []domain.Record{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

func (h *APIHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var record domain.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.svc.CreateRecord(r.Context(), user.Username, &record)
	if errors.Is(err, services.ErrInvalidRecord) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		h.internalError(w, "CreateRecord", err)
		return
	}

	h.logger.Info("record created", "username", user.Username, "fqdn", record.FQDN, "type", record.Type)
	h.writeJSON(w, http.StatusCreated, record)
}

func (h *APIHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	err := h.svc.DeleteRecord(r.Context(), user.Username, id)
	if errors.Is(err, domain.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.internalError(w, "DeleteRecord", err)
		return
	}

	h.logger.Info("record deleted", "username", user.Username, "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// JobChildren returns the completed child results of a background job,
// narrowed to children from queues matching ?queue=.
func (h *APIHandler) JobChildren(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	values, err := h.svc.ChildResults(r.Context(), r.PathValue("queue"), r.PathValue("id"), r.URL.Query().Get("queue"))
	if errors.Is(err, services.ErrJobsUnavailable) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		h.internalError(w, "JobChildren", err)
		return
	}
	h.writeJSON(w, http.StatusOK, values)
}

func (h *APIHandler) requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, err := RequireUser(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return nil, false
	}
	return user, true
}

func (h *APIHandler) internalError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("request failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "")
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
