package rest

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/export"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
)

// CreateList handles POST /v1/lists
func (h *Handler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.service.CreateList(r.Context(), &roster.CreateListInput{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Army:        req.Army,
		Faction:     req.Faction,
		Allegiance:  req.Allegiance,
		PointsLimit: req.PointsLimit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Snapshot)
}

// GetList handles GET /v1/lists/{listID}
func (h *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetList(r.Context(), &roster.GetListInput{ListID: pathVar(r, "listID")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Snapshot)
}

// ListLists handles GET /v1/lists?owner=
func (h *Handler) ListLists(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListLists(r.Context(), &roster.ListListsInput{OwnerID: r.URL.Query().Get("owner")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listsResponse{Lists: out.Lists})
}

// DeleteList handles DELETE /v1/lists/{listID}
func (h *Handler) DeleteList(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.DeleteList(r.Context(), &roster.DeleteListInput{ListID: pathVar(r, "listID")}); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateSettings handles PUT /v1/lists/{listID}/settings.
// A change that would drop units answers 202 and waits for confirmation.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req engine.ListSettings
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.service.UpdateSettings(r.Context(), &roster.UpdateSettingsInput{
		ListID:   pathVar(r, "listID"),
		Settings: req,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if out.Status == engine.SettingsPendingConfirmation {
		status = http.StatusAccepted
	}
	writeJSON(w, status, settingsResponse{
		Status:       out.Status,
		InvalidUnits: out.InvalidUnits,
		Snapshot:     out.Snapshot,
	})
}

// ConfirmSettings handles POST /v1/lists/{listID}/settings/confirm
func (h *Handler) ConfirmSettings(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ConfirmSettings(r.Context(), &roster.ConfirmSettingsInput{ListID: pathVar(r, "listID")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, confirmSettingsResponse{Snapshot: out.Snapshot, Removed: out.Removed})
}

// CancelSettings handles DELETE /v1/lists/{listID}/settings/pending
func (h *Handler) CancelSettings(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.CancelSettings(r.Context(), &roster.CancelSettingsInput{ListID: pathVar(r, "listID")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cancelSettingsResponse{Discarded: out.Discarded})
}

// ExportList handles GET /v1/lists/{listID}/export.
// format=text renders a printable roster, lang picks the number format.
func (h *Handler) ExportList(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format != "" && format != "json" && format != "text" {
		writeError(w, r, errors.InvalidArgumentf("unsupported export format %q", format))
		return
	}

	out, err := h.service.ExportList(r.Context(), &roster.ExportListInput{ListID: pathVar(r, "listID")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if format != "text" {
		writeJSON(w, http.StatusOK, out.Roster)
		return
	}

	tag := language.English
	if lang := r.URL.Query().Get("lang"); lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			writeError(w, r, errors.InvalidArgumentf("invalid lang %q", lang))
			return
		}
		tag = parsed
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.Text(out.Roster, tag)))
}
