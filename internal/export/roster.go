// Package export turns a committed list into a read-only roster document and
// renders it as plain text.
package export

import (
	"context"
	"slices"

	"github.com/KirkDiggler/crusade-api/internal/catalog"
	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// Roster is the fully resolved, read-only form of a list
type Roster struct {
	ListID      string       `json:"list_id"`
	Name        string       `json:"name"`
	Army        string       `json:"army"`
	Faction     string       `json:"faction"`
	Allegiance  string       `json:"allegiance"`
	PointsLimit int          `json:"points_limit,omitempty"`
	TotalPoints int          `json:"total_points"`
	OverLimit   bool         `json:"over_limit"`
	Valid       bool         `json:"valid"`
	Detachments []Detachment `json:"detachments"`
	Warnings    []string     `json:"warnings"`
}

// Detachment is one detachment of a roster
type Detachment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Points      int    `json:"points"`
	Valid       bool   `json:"valid"`
	SlotsFilled int    `json:"slots_filled"`
	SlotsTotal  int    `json:"slots_total"`
	Units       []Unit `json:"units"`
}

// Unit is one unit of a roster with its equipment resolved
type Unit struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Role         string      `json:"role"`
	Prime        bool        `json:"prime"`
	Logistical   bool        `json:"logistical"`
	BaseCost     int         `json:"base_cost"`
	Points       int         `json:"points"`
	Equipment    []Equipment `json:"equipment"`
	Wargear      []string    `json:"wargear"`
	SpecialRules []string    `json:"special_rules"`
	PrimeBenefit *Benefit    `json:"prime_benefit,omitempty"`
}

// Equipment is a selected option and what it cost
type Equipment struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// Benefit is the prime benefit a unit holds
type Benefit struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Build resolves a committed list into a roster. Detachment templates are
// looked up only to count slots; a template missing from the catalog leaves
// the counts at zero.
func Build(
	ctx context.Context,
	lookup catalog.Lookup,
	list *armylist.List,
	validation *engine.Validation,
) (*Roster, error) {
	if list == nil {
		return nil, errors.InvalidArgument("list is required")
	}

	roster := &Roster{
		ListID:      list.ID,
		Name:        list.Name,
		Army:        list.Army,
		Faction:     list.Faction,
		Allegiance:  list.Allegiance,
		PointsLimit: list.PointsLimit,
		TotalPoints: list.TotalPoints,
		OverLimit:   list.OverLimit(),
		Valid:       true,
		Detachments: make([]Detachment, 0, len(list.Detachments)),
		Warnings:    []string{},
	}

	if validation != nil {
		for _, w := range validation.Warnings {
			roster.Warnings = append(roster.Warnings, w.Message)
		}
	}

	for _, det := range list.Detachments {
		out := Detachment{
			ID:     det.ID,
			Name:   det.Name,
			Type:   det.Type.String(),
			Points: det.TotalPoints,
			Valid:  det.IsValid,
			Units:  make([]Unit, 0, len(det.Units)),
		}
		if !det.IsValid {
			roster.Valid = false
		}

		tmpl, err := lookup.GetDetachmentTemplate(ctx, det.TemplateID)
		switch {
		case err == nil:
			for _, slot := range engine.ComputeSlots(tmpl, det) {
				out.SlotsTotal++
				if slot.Unit != nil {
					out.SlotsFilled++
				}
			}
		case !errors.IsNotFound(err):
			return nil, errors.Wrapf(err, "failed to get detachment template %s", det.TemplateID)
		}

		for _, unit := range det.Units {
			out.Units = append(out.Units, buildUnit(unit))
		}
		roster.Detachments = append(roster.Detachments, out)
	}

	return roster, nil
}

func buildUnit(unit *armylist.Unit) Unit {
	out := Unit{
		ID:           unit.ID,
		Name:         unit.Name,
		Role:         unit.Role.String(),
		Prime:        unit.IsPrimeSlot,
		Logistical:   unit.IsLogisticalBenefit,
		BaseCost:     unit.BaseCost,
		Points:       unit.TotalCost,
		Equipment:    make([]Equipment, 0, len(unit.Equipment)),
		Wargear:      Wargear(unit.BaseWargear, unit.Equipment),
		SpecialRules: slices.Clone(unit.SpecialRules),
	}
	if out.SpecialRules == nil {
		out.SpecialRules = []string{}
	}
	for _, sel := range unit.Equipment {
		out.Equipment = append(out.Equipment, Equipment{Name: sel.Name, Cost: sel.Cost})
	}
	if unit.PrimeBenefit != nil {
		out.PrimeBenefit = &Benefit{
			Name:        unit.PrimeBenefit.Name,
			Description: unit.PrimeBenefit.Description,
		}
	}
	return out
}

// Wargear returns the base wargear with every replaced item taken out,
// followed by the selected equipment. Each replacement removes one matching item.
func Wargear(base []string, selection []armylist.EquipmentSelection) []string {
	out := slices.Clone(base)
	for _, sel := range selection {
		for _, replaced := range sel.Replaces {
			if i := slices.Index(out, replaced); i >= 0 {
				out = slices.Delete(out, i, i+1)
			}
		}
	}
	for _, sel := range selection {
		out = append(out, sel.Name)
	}
	if out == nil {
		out = []string{}
	}
	return out
}
