package engine

import (
	"slices"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// ListSettings are the list-level fields a user may change
type ListSettings struct {
	Name        string `json:"name"`
	Army        string `json:"army"`
	Faction     string `json:"faction"`
	Allegiance  string `json:"allegiance"`
	PointsLimit int    `json:"points_limit"`
}

// SettingsStatus tells whether a settings change took effect
type SettingsStatus string

// Settings statuses
const (
	SettingsApplied             SettingsStatus = "applied"
	SettingsPendingConfirmation SettingsStatus = "pending_confirmation"
)

// SettingsChange is the outcome of changing list settings. When the status is
// pending, List holds the candidate list that still contains InvalidUnits and
// must be confirmed or discarded by the caller.
type SettingsChange struct {
	Status       SettingsStatus `json:"status"`
	List         *armylist.List `json:"list"`
	InvalidUnits []InvalidUnit  `json:"invalid_units"`
}

// ApplySettings builds the candidate list for new settings. Units are checked
// against templates only when army, faction or allegiance change.
func ApplySettings(
	list *armylist.List,
	settings *ListSettings,
	templates map[string]*armylist.UnitTemplate,
) (*SettingsChange, error) {
	if settings == nil {
		return nil, errors.InvalidArgument("settings are required")
	}

	candidate := list.Clone()
	candidate.Name = settings.Name
	candidate.Army = settings.Army
	candidate.Faction = settings.Faction
	candidate.Allegiance = settings.Allegiance
	candidate.PointsLimit = settings.PointsLimit

	change := &SettingsChange{
		Status:       SettingsApplied,
		List:         candidate,
		InvalidUnits: []InvalidUnit{},
	}

	scopeChanged := list.Army != settings.Army ||
		list.Faction != settings.Faction ||
		list.Allegiance != settings.Allegiance
	if !scopeChanged {
		return change, nil
	}

	change.InvalidUnits = FindIncompatibleUnits(candidate, templates)
	if len(change.InvalidUnits) > 0 {
		change.Status = SettingsPendingConfirmation
	}

	return change, nil
}

// ConfirmSettings removes the invalid units from a pending change and returns
// the resulting list
func ConfirmSettings(change *SettingsChange) (*armylist.List, error) {
	if change == nil || change.List == nil {
		return nil, errors.FailedPrecondition("no settings change to confirm")
	}

	out := change.List.Clone()
	if change.Status != SettingsPendingConfirmation {
		return out, nil
	}

	invalid := make(map[string]struct{}, len(change.InvalidUnits))
	for _, u := range change.InvalidUnits {
		invalid[u.UnitID] = struct{}{}
	}
	for _, det := range out.Detachments {
		det.Units = slices.DeleteFunc(det.Units, func(u *armylist.Unit) bool {
			_, drop := invalid[u.ID]
			return drop
		})
	}

	return out, nil
}
