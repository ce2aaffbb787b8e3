package engine

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
)

// Warning flags a secondary detachment whose unlock condition no longer holds
type Warning struct {
	DetachmentID   string `json:"detachment_id"`
	DetachmentName string `json:"detachment_name"`
	Message        string `json:"message"`
	SuggestedFix   string `json:"suggested_fix"`
}

// Inconsistency is a structural oddity that is reported but never fatal
type Inconsistency struct {
	DetachmentID string        `json:"detachment_id"`
	UnitID       string        `json:"unit_id,omitempty"`
	Role         armylist.Role `json:"role,omitempty"`
	SlotIndex    int           `json:"slot_index"`
	Message      string        `json:"message"`
}

// InvalidUnit is a unit whose template no longer matches the list settings
type InvalidUnit struct {
	UnitID         string `json:"unit_id"`
	UnitName       string `json:"unit_name"`
	DetachmentID   string `json:"detachment_id"`
	DetachmentName string `json:"detachment_name"`
}

// Validation is the outcome of validating a list
type Validation struct {
	Warnings        []Warning       `json:"warnings"`
	Inconsistencies []Inconsistency `json:"inconsistencies,omitempty"`
}

// Validate re-derives detachment validity from scratch and sets IsValid on
// every detachment of list. Templates are keyed by detachment template id and
// are only needed to report units that sit outside every slot.
func Validate(list *armylist.List, templates map[string]*armylist.DetachmentTemplate) *Validation {
	result := &Validation{Warnings: []Warning{}}
	primary := list.Primary()

	for _, det := range list.Detachments {
		det.IsValid = true

		if role, ok := TriggerRole(det.Type); ok {
			if primary == nil || primary.CountRole(role) == 0 {
				det.IsValid = false
				result.Warnings = append(result.Warnings, Warning{
					DetachmentID:   det.ID,
					DetachmentName: det.Name,
					Message:        fmt.Sprintf("This %s Detachment requires a %s unit in Crusade Primary Detachment", det.Type, role),
					SuggestedFix:   fmt.Sprintf("Add a %s unit or remove this detachment", role),
				})
			}
		}

		if tmpl, ok := templates[det.TemplateID]; ok {
			result.Inconsistencies = append(result.Inconsistencies, checkSlots(tmpl, det)...)
		}
	}

	return result
}

func checkSlots(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment) []Inconsistency {
	var found []Inconsistency

	slots := ComputeSlots(tmpl, det)
	for _, unit := range det.Units {
		inSlot := slices.ContainsFunc(slots, func(view SlotView) bool { return view.Unit == unit })
		if !inSlot {
			found = append(found, Inconsistency{
				DetachmentID: det.ID,
				UnitID:       unit.ID,
				Role:         unit.Role,
				SlotIndex:    unit.SlotIndex,
				Message:      fmt.Sprintf("%s does not occupy any %s slot", unit.Name, unit.Role),
			})
			continue
		}
		if slices.ContainsFunc(det.Units, func(other *armylist.Unit) bool {
			return other != unit && other.Role == unit.Role && other.SlotIndex == unit.SlotIndex
		}) {
			found = append(found, Inconsistency{
				DetachmentID: det.ID,
				UnitID:       unit.ID,
				Role:         unit.Role,
				SlotIndex:    unit.SlotIndex,
				Message:      fmt.Sprintf("%s shares %s slot %d with another unit", unit.Name, unit.Role, unit.SlotIndex),
			})
		}
	}

	for _, spec := range det.AddedRoles {
		if trigger, _ := det.FindUnit(spec.TriggeredBy); trigger == nil || !trigger.HasLogisticalBenefit() {
			found = append(found, Inconsistency{
				DetachmentID: det.ID,
				Role:         spec.Role,
				Message:      fmt.Sprintf("%s role was unlocked by %s which no longer holds the logistical benefit", spec.Role, spec.TriggeredBy),
			})
		}
	}

	return found
}

// FindIncompatibleUnits lists units whose template does not match the list's
// current army, faction and allegiance. Units whose template is missing from
// templates are reported as well.
func FindIncompatibleUnits(list *armylist.List, templates map[string]*armylist.UnitTemplate) []InvalidUnit {
	invalid := []InvalidUnit{}
	for _, det := range list.Detachments {
		for _, unit := range det.Units {
			tmpl, ok := templates[unit.TemplateID]
			if ok && tmpl.Matches(list.Army, list.Faction, list.Allegiance) {
				continue
			}
			invalid = append(invalid, InvalidUnit{
				UnitID:         unit.ID,
				UnitName:       unit.Name,
				DetachmentID:   det.ID,
				DetachmentName: det.Name,
			})
		}
	}
	return invalid
}
