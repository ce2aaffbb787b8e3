package engine

import (
	"slices"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// SetPrimeBenefit assigns or clears (benefit == nil) the prime benefit of a unit.
// Clearing or replacing a logistical benefit removes the role it unlocked; the
// units dropped with that role are returned.
func SetPrimeBenefit(
	tmpl *armylist.DetachmentTemplate,
	det *armylist.Detachment,
	unitID string,
	benefit *armylist.PrimeBenefit,
) ([]*armylist.Unit, error) {
	unit, _ := det.FindUnit(unitID)
	if unit == nil {
		return nil, errors.NotFoundf("unit %s not found in detachment %s", unitID, det.ID)
	}
	if benefit != nil && !unit.IsPrimeSlot {
		return nil, errors.FailedPreconditionf("unit %s is not in a prime slot", unit.Name)
	}
	if benefit.IsLogistical() && !unit.HasLogisticalBenefit() {
		holder := slices.IndexFunc(det.Units, func(u *armylist.Unit) bool { return u.HasLogisticalBenefit() })
		if holder >= 0 {
			return nil, errors.FailedPreconditionf("%s already holds the logistical benefit in this detachment",
				det.Units[holder].Name).
				WithMeta("unit_id", det.Units[holder].ID)
		}
	}

	var removed []*armylist.Unit
	if unit.HasLogisticalBenefit() && !benefit.IsLogistical() {
		if addedSpecIndex(det.AddedRoles, unitID) >= 0 {
			var err error
			removed, err = RemoveLogisticalRole(tmpl, det, unitID)
			if err != nil {
				return nil, err
			}
		}
	}

	if benefit == nil {
		unit.PrimeBenefit = nil
	} else {
		b := *benefit
		unit.PrimeBenefit = &b
	}

	return removed, nil
}
