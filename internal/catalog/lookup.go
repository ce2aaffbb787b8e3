// Package catalog provides read access to unit templates, detachment templates,
// weapon lists, prime benefits and the army settings lists are built against.
package catalog

//go:generate mockgen -destination=mock/mock_lookup.go -package=catalogmock github.com/KirkDiggler/crusade-api/internal/catalog Lookup

import (
	"context"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
)

// Lookup is the read-only catalog consumed by the engine and orchestrators
type Lookup interface {
	// GetUnitTemplate returns the unit template or a NotFound error
	GetUnitTemplate(ctx context.Context, id string) (*armylist.UnitTemplate, error)

	// GetDetachmentTemplate returns the detachment template or a NotFound error
	GetDetachmentTemplate(ctx context.Context, id string) (*armylist.DetachmentTemplate, error)

	// GetWeaponList returns the weapon list or a NotFound error
	GetWeaponList(ctx context.Context, id string) (*armylist.WeaponList, error)

	// ListDetachmentTemplates returns templates matching the filter, in catalog order
	ListDetachmentTemplates(ctx context.Context, input *ListDetachmentTemplatesInput) ([]*armylist.DetachmentTemplate, error)

	// ListUnitTemplates returns templates matching the filter, in catalog order
	ListUnitTemplates(ctx context.Context, input *ListUnitTemplatesInput) ([]*armylist.UnitTemplate, error)

	// ListPrimeBenefits returns every prime benefit
	ListPrimeBenefits(ctx context.Context) ([]*armylist.PrimeBenefit, error)

	// GetSettings returns the armies, factions, allegiances and logistical roles
	GetSettings(ctx context.Context) (*Settings, error)
}

// ListDetachmentTemplatesInput filters detachment templates. Empty fields match anything.
type ListDetachmentTemplatesInput struct {
	Type    armylist.DetachmentType
	Army    string
	Faction string
}

// ListUnitTemplatesInput filters unit templates. Empty fields match anything.
type ListUnitTemplatesInput struct {
	Role       armylist.Role
	Army       string
	Faction    string
	Allegiance string
}

// Data is the full catalog content, used for the embedded seed and for seeding stores
type Data struct {
	Settings    *Settings                      `json:"settings"`
	Units       []*armylist.UnitTemplate       `json:"units"`
	Detachments []*armylist.DetachmentTemplate `json:"detachments"`
	WeaponLists []*armylist.WeaponList         `json:"weapon_lists"`
	Benefits    []*armylist.PrimeBenefit       `json:"prime_benefits"`
}

func matchDetachment(tmpl *armylist.DetachmentTemplate, input *ListDetachmentTemplatesInput) bool {
	if input == nil {
		return true
	}
	if input.Type != "" && tmpl.Type != input.Type {
		return false
	}
	if input.Army != "" && !matchOne(tmpl.Armies, input.Army) {
		return false
	}
	if input.Faction != "" && !matchOne(tmpl.Factions, input.Faction) {
		return false
	}
	return true
}

func matchUnit(tmpl *armylist.UnitTemplate, input *ListUnitTemplatesInput) bool {
	if input == nil {
		return true
	}
	if input.Role != "" && tmpl.Role != input.Role {
		return false
	}
	if input.Army != "" && tmpl.Army != input.Army {
		return false
	}
	if input.Faction != "" && !matchOne(tmpl.Factions, input.Faction) {
		return false
	}
	if input.Allegiance != "" && !matchOne(tmpl.Allegiances, input.Allegiance) {
		return false
	}
	return true
}

func matchOne(values []string, value string) bool {
	for _, v := range values {
		if v == value || v == armylist.Wildcard {
			return true
		}
	}
	return false
}

var (
	_ Lookup = (*Static)(nil)
	_ Lookup = (*Redis)(nil)
)
