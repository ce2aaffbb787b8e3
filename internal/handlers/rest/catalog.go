package rest

import (
	"net/http"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
)

// GetCatalogSettings handles GET /v1/catalog/settings
func (h *Handler) GetCatalogSettings(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetCatalogSettings(r.Context(), &roster.GetCatalogSettingsInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Settings)
}

// ListPrimeBenefits handles GET /v1/prime-benefits
func (h *Handler) ListPrimeBenefits(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListPrimeBenefits(r.Context(), &roster.ListPrimeBenefitsInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, benefitsResponse{Benefits: out.Benefits})
}

// ListDetachmentTemplates handles GET /v1/lists/{listID}/detachment-templates?type=
func (h *Handler) ListDetachmentTemplates(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListDetachmentTemplates(r.Context(), &roster.ListDetachmentTemplatesInput{
		ListID: pathVar(r, "listID"),
		Type:   armylist.DetachmentType(r.URL.Query().Get("type")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, templatesResponse[*armylist.DetachmentTemplate]{Templates: out.Templates})
}

// ListUnitTemplates handles GET /v1/lists/{listID}/unit-templates?role=
func (h *Handler) ListUnitTemplates(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListUnitTemplates(r.Context(), &roster.ListUnitTemplatesInput{
		ListID: pathVar(r, "listID"),
		Role:   armylist.Role(r.URL.Query().Get("role")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, templatesResponse[*armylist.UnitTemplate]{Templates: out.Templates})
}
