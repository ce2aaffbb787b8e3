package rest

import (
	"net/http"

	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
)

// AddDetachment handles POST /v1/lists/{listID}/detachments
func (h *Handler) AddDetachment(w http.ResponseWriter, r *http.Request) {
	var req addDetachmentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.service.AddDetachment(r.Context(), &roster.AddDetachmentInput{
		ListID:     pathVar(r, "listID"),
		TemplateID: req.TemplateID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, detachmentResponse{Snapshot: out.Snapshot, Detachment: out.Detachment})
}

// RemoveDetachment handles DELETE /v1/lists/{listID}/detachments/{detachmentID}
func (h *Handler) RemoveDetachment(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.RemoveDetachment(r.Context(), &roster.RemoveDetachmentInput{
		ListID:       pathVar(r, "listID"),
		DetachmentID: pathVar(r, "detachmentID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, removeDetachmentResponse{Snapshot: out.Snapshot, Removed: out.Removed})
}

// RestoreDetachment handles POST /v1/lists/{listID}/detachments/restore
func (h *Handler) RestoreDetachment(w http.ResponseWriter, r *http.Request) {
	var req restoreDetachmentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.service.RestoreDetachment(r.Context(), &roster.RestoreDetachmentInput{
		ListID:     pathVar(r, "listID"),
		Detachment: req.Detachment,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Snapshot)
}

// GetDetachmentSlots handles GET /v1/lists/{listID}/detachments/{detachmentID}/slots
func (h *Handler) GetDetachmentSlots(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetDetachmentSlots(r.Context(), &roster.GetDetachmentSlotsInput{
		ListID:       pathVar(r, "listID"),
		DetachmentID: pathVar(r, "detachmentID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, slotsResponse{Detachment: out.Detachment, Slots: out.Slots})
}

// AvailableUnlocks handles GET /v1/lists/{listID}/unlocks
func (h *Handler) AvailableUnlocks(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.AvailableUnlocks(r.Context(), &roster.AvailableUnlocksInput{ListID: pathVar(r, "listID")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Unlocks)
}

// AddLogisticalRole handles POST /v1/lists/{listID}/detachments/{detachmentID}/logistical-roles
func (h *Handler) AddLogisticalRole(w http.ResponseWriter, r *http.Request) {
	var req logisticalRoleRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.service.AddLogisticalRole(r.Context(), &roster.AddLogisticalRoleInput{
		ListID:       pathVar(r, "listID"),
		DetachmentID: pathVar(r, "detachmentID"),
		UnitID:       req.UnitID,
		Role:         req.Role,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Snapshot)
}

// ChangeLogisticalRole handles PUT /v1/lists/{listID}/detachments/{detachmentID}/logistical-roles/{unitID}
func (h *Handler) ChangeLogisticalRole(w http.ResponseWriter, r *http.Request) {
	var req changeLogisticalRoleRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.service.ChangeLogisticalRole(r.Context(), &roster.ChangeLogisticalRoleInput{
		ListID:       pathVar(r, "listID"),
		DetachmentID: pathVar(r, "detachmentID"),
		TriggeredBy:  pathVar(r, "unitID"),
		Role:         req.Role,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, changeLogisticalRoleResponse{
		Snapshot: out.Snapshot,
		Previous: out.Previous,
		Removed:  out.Removed,
	})
}

// RemoveLogisticalRole handles DELETE /v1/lists/{listID}/detachments/{detachmentID}/logistical-roles/{unitID}
func (h *Handler) RemoveLogisticalRole(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.RemoveLogisticalRole(r.Context(), &roster.RemoveLogisticalRoleInput{
		ListID:       pathVar(r, "listID"),
		DetachmentID: pathVar(r, "detachmentID"),
		TriggeredBy:  pathVar(r, "unitID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, removedUnitsResponse{Snapshot: out.Snapshot, Removed: out.Removed})
}
