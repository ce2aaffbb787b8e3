// Package rest exposes the roster service as JSON over HTTP
package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
)

const maxBodyBytes = 1 << 20

// HandlerConfig holds dependencies for the REST handler
type HandlerConfig struct {
	Service roster.Service
	// Hub is optional; without it the watch endpoint is not registered.
	Hub *Hub
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Service == nil {
		return errors.InvalidArgument("roster service is required")
	}
	return nil
}

// Handler serves the army list API
type Handler struct {
	service roster.Service
	hub     *Hub
}

// NewHandler creates a new REST handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.Service,
		hub:     cfg.Hub,
	}, nil
}

// Router returns a mux router with every route registered
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	h.Register(r)
	return r
}

// Register adds the API routes to r
func (h *Handler) Register(r *mux.Router) {
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/catalog/settings", h.GetCatalogSettings).Methods(http.MethodGet)
	v1.HandleFunc("/prime-benefits", h.ListPrimeBenefits).Methods(http.MethodGet)

	v1.HandleFunc("/lists", h.ListLists).Methods(http.MethodGet)
	v1.HandleFunc("/lists", h.CreateList).Methods(http.MethodPost)
	v1.HandleFunc("/lists/{listID}", h.GetList).Methods(http.MethodGet)
	v1.HandleFunc("/lists/{listID}", h.DeleteList).Methods(http.MethodDelete)
	v1.HandleFunc("/lists/{listID}/export", h.ExportList).Methods(http.MethodGet)
	v1.HandleFunc("/lists/{listID}/unlocks", h.AvailableUnlocks).Methods(http.MethodGet)
	v1.HandleFunc("/lists/{listID}/detachment-templates", h.ListDetachmentTemplates).Methods(http.MethodGet)
	v1.HandleFunc("/lists/{listID}/unit-templates", h.ListUnitTemplates).Methods(http.MethodGet)

	v1.HandleFunc("/lists/{listID}/settings", h.UpdateSettings).Methods(http.MethodPut)
	v1.HandleFunc("/lists/{listID}/settings/confirm", h.ConfirmSettings).Methods(http.MethodPost)
	v1.HandleFunc("/lists/{listID}/settings/pending", h.CancelSettings).Methods(http.MethodDelete)

	v1.HandleFunc("/lists/{listID}/detachments", h.AddDetachment).Methods(http.MethodPost)
	v1.HandleFunc("/lists/{listID}/detachments/restore", h.RestoreDetachment).Methods(http.MethodPost)
	v1.HandleFunc("/lists/{listID}/detachments/{detachmentID}", h.RemoveDetachment).Methods(http.MethodDelete)
	v1.HandleFunc("/lists/{listID}/detachments/{detachmentID}/slots", h.GetDetachmentSlots).Methods(http.MethodGet)
	v1.HandleFunc("/lists/{listID}/detachments/{detachmentID}/units", h.AddUnit).Methods(http.MethodPost)
	v1.HandleFunc("/lists/{listID}/detachments/{detachmentID}/units/restore", h.RestoreUnit).Methods(http.MethodPost)
	v1.HandleFunc("/lists/{listID}/detachments/{detachmentID}/logistical-roles", h.AddLogisticalRole).
		Methods(http.MethodPost)
	v1.HandleFunc("/lists/{listID}/detachments/{detachmentID}/logistical-roles/{unitID}", h.ChangeLogisticalRole).
		Methods(http.MethodPut)
	v1.HandleFunc("/lists/{listID}/detachments/{detachmentID}/logistical-roles/{unitID}", h.RemoveLogisticalRole).
		Methods(http.MethodDelete)

	v1.HandleFunc("/lists/{listID}/units/{unitID}", h.RemoveUnit).Methods(http.MethodDelete)
	v1.HandleFunc("/lists/{listID}/units/{unitID}/options", h.GetUnitOptions).Methods(http.MethodGet)
	v1.HandleFunc("/lists/{listID}/units/{unitID}/equipment", h.UpdateUnitEquipment).Methods(http.MethodPost)
	v1.HandleFunc("/lists/{listID}/units/{unitID}/prime-benefit", h.SetPrimeBenefit).Methods(http.MethodPut)

	if h.hub != nil {
		v1.HandleFunc("/lists/{listID}/watch", h.Watch).Methods(http.MethodGet)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, _ := errors.ToResponse(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	errors.WriteHTTP(w, err)
}

// decode reads a JSON body into v. Unknown fields are rejected.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			return errors.InvalidArgument("request body is required")
		}
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}

func pathVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}
