package rest

import (
	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
)

type createListRequest struct {
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Army        string `json:"army"`
	Faction     string `json:"faction"`
	Allegiance  string `json:"allegiance"`
	PointsLimit int    `json:"points_limit"`
}

type listsResponse struct {
	Lists []*roster.ListSummary `json:"lists"`
}

type addUnitRequest struct {
	Role           armylist.Role `json:"role"`
	SlotIndex      int           `json:"slot_index"`
	UnitTemplateID string        `json:"unit_template_id"`
}

type unitResponse struct {
	*roster.Snapshot
	Unit *armylist.Unit `json:"unit"`
}

type removeUnitResponse struct {
	*roster.Snapshot
	DetachmentID string              `json:"detachment_id"`
	Removed      *armylist.Unit      `json:"removed"`
	UnlockedRole *engine.RemovedRole `json:"unlocked_role,omitempty"`
}

type restoreUnitRequest struct {
	Unit         *armylist.Unit      `json:"unit"`
	UnlockedRole *engine.RemovedRole `json:"unlocked_role,omitempty"`
}

type equipmentRequest struct {
	Operations []engine.Operation `json:"operations"`
}

type unitOptionsResponse struct {
	Unit     *armylist.Unit          `json:"unit"`
	Options  *engine.ResolvedOptions `json:"options"`
	Selected []string                `json:"selected"`
}

type primeBenefitRequest struct {
	BenefitID string `json:"benefit_id"`
}

type removedUnitsResponse struct {
	*roster.Snapshot
	Removed []*armylist.Unit `json:"removed"`
}

type logisticalRoleRequest struct {
	UnitID string        `json:"unit_id"`
	Role   armylist.Role `json:"role"`
}

type changeLogisticalRoleRequest struct {
	Role armylist.Role `json:"role"`
}

type changeLogisticalRoleResponse struct {
	*roster.Snapshot
	Previous *armylist.Detachment `json:"previous"`
	Removed  []*armylist.Unit     `json:"removed"`
}

type slotsResponse struct {
	Detachment *armylist.Detachment `json:"detachment"`
	Slots      []engine.SlotView    `json:"slots"`
}

type addDetachmentRequest struct {
	TemplateID string `json:"template_id"`
}

type detachmentResponse struct {
	*roster.Snapshot
	Detachment *armylist.Detachment `json:"detachment"`
}

type removeDetachmentResponse struct {
	*roster.Snapshot
	Removed *armylist.Detachment `json:"removed"`
}

type restoreDetachmentRequest struct {
	Detachment *armylist.Detachment `json:"detachment"`
}

type settingsResponse struct {
	Status       engine.SettingsStatus `json:"status"`
	InvalidUnits []engine.InvalidUnit  `json:"invalid_units"`
	Snapshot     *roster.Snapshot      `json:"snapshot,omitempty"`
}

type confirmSettingsResponse struct {
	*roster.Snapshot
	Removed []engine.InvalidUnit `json:"removed"`
}

type cancelSettingsResponse struct {
	Discarded bool `json:"discarded"`
}

type templatesResponse[T any] struct {
	Templates []T `json:"templates"`
}

type benefitsResponse struct {
	Benefits []*armylist.PrimeBenefit `json:"benefits"`
}
