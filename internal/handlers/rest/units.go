package rest

import (
	"net/http"

	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
)

// AddUnit handles POST /v1/lists/{listID}/detachments/{detachmentID}/units
func (h *Handler) AddUnit(w http.ResponseWriter, r *http.Request) {
	var req addUnitRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.service.AddUnit(r.Context(), &roster.AddUnitInput{
		ListID:         pathVar(r, "listID"),
		DetachmentID:   pathVar(r, "detachmentID"),
		Role:           req.Role,
		SlotIndex:      req.SlotIndex,
		UnitTemplateID: req.UnitTemplateID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, unitResponse{Snapshot: out.Snapshot, Unit: out.Unit})
}

// RemoveUnit handles DELETE /v1/lists/{listID}/units/{unitID}.
// The removed unit is returned so the client can offer undo.
func (h *Handler) RemoveUnit(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.RemoveUnit(r.Context(), &roster.RemoveUnitInput{
		ListID: pathVar(r, "listID"),
		UnitID: pathVar(r, "unitID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, removeUnitResponse{
		Snapshot:     out.Snapshot,
		DetachmentID: out.DetachmentID,
		Removed:      out.Removed,
		UnlockedRole: out.UnlockedRole,
	})
}

// RestoreUnit handles POST /v1/lists/{listID}/detachments/{detachmentID}/units/restore
func (h *Handler) RestoreUnit(w http.ResponseWriter, r *http.Request) {
	var req restoreUnitRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.service.RestoreUnit(r.Context(), &roster.RestoreUnitInput{
		ListID:       pathVar(r, "listID"),
		DetachmentID: pathVar(r, "detachmentID"),
		Unit:         req.Unit,
		UnlockedRole: req.UnlockedRole,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Snapshot)
}

// UpdateUnitEquipment handles POST /v1/lists/{listID}/units/{unitID}/equipment
func (h *Handler) UpdateUnitEquipment(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.service.UpdateUnitEquipment(r.Context(), &roster.UpdateUnitEquipmentInput{
		ListID:     pathVar(r, "listID"),
		UnitID:     pathVar(r, "unitID"),
		Operations: req.Operations,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, unitResponse{Snapshot: out.Snapshot, Unit: out.Unit})
}

// GetUnitOptions handles GET /v1/lists/{listID}/units/{unitID}/options
func (h *Handler) GetUnitOptions(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetUnitOptions(r.Context(), &roster.GetUnitOptionsInput{
		ListID: pathVar(r, "listID"),
		UnitID: pathVar(r, "unitID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, unitOptionsResponse{
		Unit:     out.Unit,
		Options:  out.Options,
		Selected: out.Selected,
	})
}

// SetPrimeBenefit handles PUT /v1/lists/{listID}/units/{unitID}/prime-benefit.
// An empty benefit_id clears the benefit.
func (h *Handler) SetPrimeBenefit(w http.ResponseWriter, r *http.Request) {
	var req primeBenefitRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.service.SetPrimeBenefit(r.Context(), &roster.SetPrimeBenefitInput{
		ListID:    pathVar(r, "listID"),
		UnitID:    pathVar(r, "unitID"),
		BenefitID: req.BenefitID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, removedUnitsResponse{Snapshot: out.Snapshot, Removed: out.Removed})
}
