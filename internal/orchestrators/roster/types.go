package roster

import (
	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/export"
)

// Snapshot is a committed list together with its validation result.
// PersistError is set when the list was committed in memory but could not be saved.
type Snapshot struct {
	List         *armylist.List     `json:"list"`
	Validation   *engine.Validation `json:"validation"`
	PersistError string             `json:"persist_error,omitempty"`
}

// EventType names a change pushed to watchers
type EventType string

// Event types
const (
	EventListUpdated EventType = "list.updated"
	EventListDeleted EventType = "list.deleted"
)

// Event is published to the Notifier after every commit
type Event struct {
	Type     EventType `json:"type"`
	ListID   string    `json:"list_id"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
}

// CreateListInput defines the request for creating a list
type CreateListInput struct {
	OwnerID     string
	Name        string
	Army        string
	Faction     string
	Allegiance  string
	PointsLimit int
}

// CreateListOutput defines the response for creating a list
type CreateListOutput struct {
	Snapshot *Snapshot
}

// GetListInput defines the request for getting a list
type GetListInput struct {
	ListID string
}

// GetListOutput defines the response for getting a list
type GetListOutput struct {
	Snapshot *Snapshot
}

// ListListsInput defines the request for listing an owner's lists
type ListListsInput struct {
	OwnerID string
}

// ListSummary is the short form of a list used in listings
type ListSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Army        string `json:"army"`
	Faction     string `json:"faction"`
	Allegiance  string `json:"allegiance"`
	PointsLimit int    `json:"points_limit,omitempty"`
	TotalPoints int    `json:"total_points"`
	Detachments int    `json:"detachments"`
	UpdatedAt   int64  `json:"updated_at"`
}

// ListListsOutput defines the response for listing an owner's lists
type ListListsOutput struct {
	Lists []*ListSummary
}

// DeleteListInput defines the request for deleting a list
type DeleteListInput struct {
	ListID string
}

// DeleteListOutput defines the response for deleting a list
type DeleteListOutput struct{}

// AddUnitInput places a new unit from a template into a slot
type AddUnitInput struct {
	ListID         string
	DetachmentID   string
	Role           armylist.Role
	SlotIndex      int
	UnitTemplateID string
}

// AddUnitOutput defines the response for adding a unit
type AddUnitOutput struct {
	Snapshot *Snapshot
	Unit     *armylist.Unit
}

// RemoveUnitInput defines the request for removing a unit
type RemoveUnitInput struct {
	ListID string
	UnitID string
}

// RemoveUnitOutput carries the removed unit so it can be restored.
// UnlockedRole is set when the unit took its logistical role with it.
type RemoveUnitOutput struct {
	Snapshot     *Snapshot
	DetachmentID string
	Removed      *armylist.Unit
	UnlockedRole *engine.RemovedRole
}

// RestoreUnitInput puts a removed unit back into its slot, along with the
// logistical role removed with it
type RestoreUnitInput struct {
	ListID       string
	DetachmentID string
	Unit         *armylist.Unit
	UnlockedRole *engine.RemovedRole
}

// RestoreUnitOutput defines the response for restoring a unit
type RestoreUnitOutput struct {
	Snapshot *Snapshot
}

// UpdateUnitEquipmentInput applies option operations to a unit's selection
type UpdateUnitEquipmentInput struct {
	ListID     string
	UnitID     string
	Operations []engine.Operation
}

// UpdateUnitEquipmentOutput defines the response for updating equipment
type UpdateUnitEquipmentOutput struct {
	Snapshot *Snapshot
	Unit     *armylist.Unit
}

// GetUnitOptionsInput defines the request for a unit's option editor data
type GetUnitOptionsInput struct {
	ListID string
	UnitID string
}

// GetUnitOptionsOutput carries the resolved option tree and the current selection
type GetUnitOptionsOutput struct {
	Unit     *armylist.Unit
	Options  *engine.ResolvedOptions
	Selected []string
}

// SetPrimeBenefitInput assigns a prime benefit; an empty BenefitID clears it
type SetPrimeBenefitInput struct {
	ListID    string
	UnitID    string
	BenefitID string
}

// SetPrimeBenefitOutput lists the units dropped along with a cleared logistical role
type SetPrimeBenefitOutput struct {
	Snapshot *Snapshot
	Removed  []*armylist.Unit
}

// AddLogisticalRoleInput defines the request for unlocking a logistical role
type AddLogisticalRoleInput struct {
	ListID       string
	DetachmentID string
	UnitID       string
	Role         armylist.Role
}

// AddLogisticalRoleOutput defines the response for unlocking a logistical role
type AddLogisticalRoleOutput struct {
	Snapshot *Snapshot
}

// RemoveLogisticalRoleInput defines the request for removing a logistical role
type RemoveLogisticalRoleInput struct {
	ListID       string
	DetachmentID string
	TriggeredBy  string
}

// RemoveLogisticalRoleOutput carries the units that sat in the removed slots
type RemoveLogisticalRoleOutput struct {
	Snapshot *Snapshot
	Removed  []*armylist.Unit
}

// ChangeLogisticalRoleInput defines the request for switching a logistical role
type ChangeLogisticalRoleInput struct {
	ListID       string
	DetachmentID string
	TriggeredBy  string
	Role         armylist.Role
}

// ChangeLogisticalRoleOutput carries the detachment as it was before the change
type ChangeLogisticalRoleOutput struct {
	Snapshot *Snapshot
	Previous *armylist.Detachment
	Removed  []*armylist.Unit
}

// GetDetachmentSlotsInput defines the request for a detachment's slot layout
type GetDetachmentSlotsInput struct {
	ListID       string
	DetachmentID string
}

// GetDetachmentSlotsOutput defines the response for a detachment's slot layout
type GetDetachmentSlotsOutput struct {
	Detachment *armylist.Detachment
	Slots      []engine.SlotView
}

// AddDetachmentInput defines the request for adding a secondary detachment
type AddDetachmentInput struct {
	ListID     string
	TemplateID string
}

// AddDetachmentOutput defines the response for adding a secondary detachment
type AddDetachmentOutput struct {
	Snapshot   *Snapshot
	Detachment *armylist.Detachment
}

// RemoveDetachmentInput defines the request for removing a detachment
type RemoveDetachmentInput struct {
	ListID       string
	DetachmentID string
}

// RemoveDetachmentOutput carries the removed detachment so it can be restored
type RemoveDetachmentOutput struct {
	Snapshot *Snapshot
	Removed  *armylist.Detachment
}

// RestoreDetachmentInput defines the request for restoring a detachment
type RestoreDetachmentInput struct {
	ListID     string
	Detachment *armylist.Detachment
}

// RestoreDetachmentOutput defines the response for restoring a detachment
type RestoreDetachmentOutput struct {
	Snapshot *Snapshot
}

// AvailableUnlocksInput defines the request for counting detachment unlocks
type AvailableUnlocksInput struct {
	ListID string
}

// AvailableUnlocksOutput defines the response for counting detachment unlocks
type AvailableUnlocksOutput struct {
	Unlocks engine.Unlocks
}

// UpdateSettingsInput defines the request for changing list settings
type UpdateSettingsInput struct {
	ListID   string
	Settings engine.ListSettings
}

// UpdateSettingsOutput holds the change; Snapshot is set only when it was applied
type UpdateSettingsOutput struct {
	Status       engine.SettingsStatus
	InvalidUnits []engine.InvalidUnit
	Snapshot     *Snapshot
}

// ConfirmSettingsInput defines the request for confirming a pending settings change
type ConfirmSettingsInput struct {
	ListID string
}

// ConfirmSettingsOutput defines the response for confirming a settings change
type ConfirmSettingsOutput struct {
	Snapshot *Snapshot
	Removed  []engine.InvalidUnit
}

// CancelSettingsInput defines the request for discarding a pending settings change
type CancelSettingsInput struct {
	ListID string
}

// CancelSettingsOutput reports whether a pending change was discarded
type CancelSettingsOutput struct {
	Discarded bool
}

// ListDetachmentTemplatesInput filters detachment templates for a list
type ListDetachmentTemplatesInput struct {
	ListID string
	Type   armylist.DetachmentType
}

// ListDetachmentTemplatesOutput defines the response for detachment templates
type ListDetachmentTemplatesOutput struct {
	Templates []*armylist.DetachmentTemplate
}

// ListUnitTemplatesInput filters unit templates for a list
type ListUnitTemplatesInput struct {
	ListID string
	Role   armylist.Role
}

// ListUnitTemplatesOutput defines the response for unit templates
type ListUnitTemplatesOutput struct {
	Templates []*armylist.UnitTemplate
}

// ListPrimeBenefitsInput defines the request for prime benefits
type ListPrimeBenefitsInput struct{}

// ListPrimeBenefitsOutput defines the response for prime benefits
type ListPrimeBenefitsOutput struct {
	Benefits []*armylist.PrimeBenefit
}

// ExportListInput defines the request for exporting a list
type ExportListInput struct {
	ListID string
}

// ExportListOutput defines the response for exporting a list
type ExportListOutput struct {
	Roster *export.Roster
}
