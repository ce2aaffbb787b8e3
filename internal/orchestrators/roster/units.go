package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// AddUnit places a unit built from a catalog template into an empty slot
func (o *orchestrator) AddUnit(ctx context.Context, input *AddUnitInput) (_ *AddUnitOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "AddUnit", input.ListID)
	defer func() { endSpan(span, err) }()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("unit_template_id", input.UnitTemplateID, vb)
	if !input.Role.IsValid() {
		vb.InvalidField("role", "unknown role")
	}
	if input.SlotIndex < 0 {
		vb.InvalidField("slot_index", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unitTmpl, err := o.catalog.GetUnitTemplate(ctx, input.UnitTemplateID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get unit template %s", input.UnitTemplateID)
	}

	var placed *armylist.Unit
	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		if !unitTmpl.Matches(l.Army, l.Faction, l.Allegiance) {
			return errors.FailedPreconditionf("%s is not available to %s %s (%s)",
				unitTmpl.Name, l.Faction, l.Army, l.Allegiance).
				WithMeta("unit_template_id", unitTmpl.ID)
		}
		det, err := findDetachment(l, input.DetachmentID)
		if err != nil {
			return err
		}
		detTmpl, err := o.detachmentTemplate(ctx, det)
		if err != nil {
			return err
		}

		placed, err = engine.PlaceUnit(detTmpl, det, &engine.PlaceUnitInput{
			UnitID:    o.unitIDs.Generate(),
			Role:      input.Role,
			SlotIndex: input.SlotIndex,
			Template:  unitTmpl,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	_, unit := snap.List.FindUnit(placed.ID)
	slog.Info("Unit added",
		"list_id", input.ListID,
		"detachment_id", input.DetachmentID,
		"unit_id", placed.ID,
		"template_id", unitTmpl.ID,
	)

	return &AddUnitOutput{Snapshot: snap, Unit: unit}, nil
}

// RemoveUnit deletes a unit and hands it back for a later RestoreUnit
func (o *orchestrator) RemoveUnit(ctx context.Context, input *RemoveUnitInput) (_ *RemoveUnitOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "RemoveUnit", input.ListID)
	defer func() { endSpan(span, err) }()

	var (
		detachmentID string
		removal      *engine.UnitRemoval
	)
	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		det, _, err := findUnit(l, input.UnitID)
		if err != nil {
			return err
		}
		detTmpl, err := o.detachmentTemplate(ctx, det)
		if err != nil {
			return err
		}
		detachmentID = det.ID
		removal, err = engine.RemoveUnit(detTmpl, det, input.UnitID)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := &RemoveUnitOutput{
		Snapshot:     snap,
		DetachmentID: detachmentID,
		Removed:      removal.Unit.Clone(),
	}
	if role := removal.Role; role != nil {
		out.UnlockedRole = &engine.RemovedRole{
			Spec:      role.Spec,
			SlotIndex: role.SlotIndex,
			Units:     cloneUnits(role.Units),
		}
		slog.Info("Logistical role dropped with its unit",
			"list_id", input.ListID,
			"unit_id", input.UnitID,
			"removed_units", len(role.Units),
		)
	}
	return out, nil
}

// RestoreUnit re-inserts a unit removed earlier
func (o *orchestrator) RestoreUnit(ctx context.Context, input *RestoreUnitInput) (_ *RestoreUnitOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Unit == nil {
		return nil, errors.InvalidArgument("unit snapshot is required")
	}
	ctx, span := o.startSpan(ctx, "RestoreUnit", input.ListID)
	defer func() { endSpan(span, err) }()

	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		if _, existing := l.FindUnit(input.Unit.ID); existing != nil {
			return errors.AlreadyExistsf("unit %s is already in list %s", input.Unit.ID, l.ID)
		}
		det, err := findDetachment(l, input.DetachmentID)
		if err != nil {
			return err
		}
		detTmpl, err := o.detachmentTemplate(ctx, det)
		if err != nil {
			return err
		}
		return engine.RestoreUnit(detTmpl, det, &engine.UnitRemoval{
			Unit: input.Unit,
			Role: input.UnlockedRole,
		})
	})
	if err != nil {
		return nil, err
	}

	return &RestoreUnitOutput{Snapshot: snap}, nil
}

// UpdateUnitEquipment applies toggle and select operations to a unit's equipment.
// The operations succeed or fail together.
func (o *orchestrator) UpdateUnitEquipment(
	ctx context.Context,
	input *UpdateUnitEquipmentInput,
) (_ *UpdateUnitEquipmentOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Operations) == 0 {
		return nil, errors.InvalidArgument("at least one operation is required")
	}
	ctx, span := o.startSpan(ctx, "UpdateUnitEquipment", input.ListID)
	defer func() { endSpan(span, err) }()

	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		_, unit, err := findUnit(l, input.UnitID)
		if err != nil {
			return err
		}
		selector, err := o.selectorFor(ctx, unit)
		if err != nil {
			return err
		}
		next, err := selector.Apply(unit.Equipment, input.Operations)
		if err != nil {
			return err
		}
		unit.Equipment = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, unit := snap.List.FindUnit(input.UnitID)
	return &UpdateUnitEquipmentOutput{Snapshot: snap, Unit: unit}, nil
}

// GetUnitOptions returns the resolved option tree of a unit and the keys it has selected
func (o *orchestrator) GetUnitOptions(ctx context.Context, input *GetUnitOptionsInput) (*GetUnitOptionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	snap, err := o.load(ctx, input.ListID)
	var unit *armylist.Unit
	if err == nil {
		_, unit, err = findUnit(snap.List, input.UnitID)
		unit = unit.Clone()
	}
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	tmpl, err := o.unitTemplate(ctx, unit)
	if err != nil {
		return nil, err
	}
	resolved, err := o.engine.ResolveOptions(ctx, tmpl.EquipmentOptions)
	if err != nil {
		return nil, err
	}

	return &GetUnitOptionsOutput{
		Unit:     unit,
		Options:  resolved,
		Selected: engine.NewSelector(resolved).SelectedKeys(unit.Equipment),
	}, nil
}

// SetPrimeBenefit assigns a prime benefit to a prime-slot unit, or clears it
func (o *orchestrator) SetPrimeBenefit(ctx context.Context, input *SetPrimeBenefitInput) (_ *SetPrimeBenefitOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "SetPrimeBenefit", input.ListID)
	defer func() { endSpan(span, err) }()

	var benefit *armylist.PrimeBenefit
	if input.BenefitID != "" {
		benefit, err = o.primeBenefit(ctx, input.BenefitID)
		if err != nil {
			return nil, err
		}
	}

	var removed []*armylist.Unit
	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		det, _, err := findUnit(l, input.UnitID)
		if err != nil {
			return err
		}
		detTmpl, err := o.detachmentTemplate(ctx, det)
		if err != nil {
			return err
		}
		removed, err = engine.SetPrimeBenefit(detTmpl, det, input.UnitID, benefit)
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(removed) > 0 {
		slog.Info("Logistical role dropped with its benefit",
			"list_id", input.ListID,
			"unit_id", input.UnitID,
			"removed_units", len(removed),
		)
	}

	return &SetPrimeBenefitOutput{Snapshot: snap, Removed: cloneUnits(removed)}, nil
}

func (o *orchestrator) selectorFor(ctx context.Context, unit *armylist.Unit) (*engine.Selector, error) {
	tmpl, err := o.unitTemplate(ctx, unit)
	if err != nil {
		return nil, err
	}
	resolved, err := o.engine.ResolveOptions(ctx, tmpl.EquipmentOptions)
	if err != nil {
		return nil, err
	}
	return engine.NewSelector(resolved), nil
}

func (o *orchestrator) unitTemplate(ctx context.Context, unit *armylist.Unit) (*armylist.UnitTemplate, error) {
	tmpl, err := o.catalog.GetUnitTemplate(ctx, unit.TemplateID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPreconditionf("unit template %s is no longer in the catalog", unit.TemplateID).
				WithMeta("unit_id", unit.ID)
		}
		return nil, errors.Wrapf(err, "failed to get unit template %s", unit.TemplateID)
	}
	return tmpl, nil
}

func (o *orchestrator) primeBenefit(ctx context.Context, id string) (*armylist.PrimeBenefit, error) {
	benefits, err := o.catalog.ListPrimeBenefits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prime benefits")
	}
	for _, b := range benefits {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.NotFoundf("prime benefit %s not found", id)
}

func cloneUnits(units []*armylist.Unit) []*armylist.Unit {
	out := make([]*armylist.Unit, 0, len(units))
	for _, u := range units {
		out = append(out, u.Clone())
	}
	return out
}
