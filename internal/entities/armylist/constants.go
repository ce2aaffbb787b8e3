// Package armylist holds the catalog and list entities shared by the engine,
// the catalog lookups and the list repositories.
package armylist

// Role is the battlefield role a slot is reserved for
type Role string

// Role constants
const (
	RoleHighCommand  Role = "High Command"
	RoleCommand      Role = "Command"
	RoleTroops       Role = "Troops"
	RoleElites       Role = "Elites"
	RoleFastAttack   Role = "Fast Attack"
	RoleHeavySupport Role = "Heavy Support"
	RoleSupport      Role = "Support"
	RoleLordOfWar    Role = "Lord of War"
)

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the role is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleHighCommand, RoleCommand, RoleTroops, RoleElites,
		RoleFastAttack, RoleHeavySupport, RoleSupport, RoleLordOfWar:
		return true
	default:
		return false
	}
}

// DetachmentType classifies a detachment within a list
type DetachmentType string

// Detachment type constants
const (
	DetachmentTypePrimary   DetachmentType = "Primary"
	DetachmentTypeApex      DetachmentType = "Apex"
	DetachmentTypeAuxiliary DetachmentType = "Auxiliary"
)

// String returns the string representation of the detachment type
func (t DetachmentType) String() string {
	return string(t)
}

// IsValid checks if the detachment type is known
func (t DetachmentType) IsValid() bool {
	switch t {
	case DetachmentTypePrimary, DetachmentTypeApex, DetachmentTypeAuxiliary:
		return true
	default:
		return false
	}
}

// SelectionMode controls how options within a group combine
type SelectionMode string

// Selection mode constants
const (
	SelectionModeCheckbox SelectionMode = "checkbox"
	SelectionModeRadio    SelectionMode = "radio"
)

// OptionType distinguishes inline options from weapon list references
type OptionType string

// Option type constants
const (
	OptionTypeStandard            OptionType = "standard"
	OptionTypeWeaponListReference OptionType = "weapon_list_reference"
)

const (
	// PrimaryDetachmentTemplateID is the template every new list starts from
	PrimaryDetachmentTemplateID = "crusade-primary"

	// LogisticalBenefitID is the prime benefit that unlocks an extra role slot.
	// At most one unit per detachment may hold it.
	LogisticalBenefitID = "logistical-benefit"

	// Wildcard matches any army, faction or allegiance in catalog filters
	Wildcard = "All"
)
