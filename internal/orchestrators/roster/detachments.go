package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// AddLogisticalRole unlocks an extra one-slot role for the holder of the logistical benefit
func (o *orchestrator) AddLogisticalRole(ctx context.Context, input *AddLogisticalRoleInput) (_ *AddLogisticalRoleOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "AddLogisticalRole", input.ListID)
	defer func() { endSpan(span, err) }()

	allowed, err := o.logisticalRoles(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		det, err := findDetachment(l, input.DetachmentID)
		if err != nil {
			return err
		}
		return engine.AddLogisticalRole(det, input.UnitID, input.Role, allowed)
	})
	if err != nil {
		return nil, err
	}

	return &AddLogisticalRoleOutput{Snapshot: snap}, nil
}

// RemoveLogisticalRole removes the role a unit unlocked and the units in its slots
func (o *orchestrator) RemoveLogisticalRole(
	ctx context.Context,
	input *RemoveLogisticalRoleInput,
) (_ *RemoveLogisticalRoleOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "RemoveLogisticalRole", input.ListID)
	defer func() { endSpan(span, err) }()

	var removed []*armylist.Unit
	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		det, err := findDetachment(l, input.DetachmentID)
		if err != nil {
			return err
		}
		detTmpl, err := o.detachmentTemplate(ctx, det)
		if err != nil {
			return err
		}
		removed, err = engine.RemoveLogisticalRole(detTmpl, det, input.TriggeredBy)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &RemoveLogisticalRoleOutput{Snapshot: snap, Removed: cloneUnits(removed)}, nil
}

// ChangeLogisticalRole switches an unlocked role to another allowed role
func (o *orchestrator) ChangeLogisticalRole(
	ctx context.Context,
	input *ChangeLogisticalRoleInput,
) (_ *ChangeLogisticalRoleOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "ChangeLogisticalRole", input.ListID)
	defer func() { endSpan(span, err) }()

	allowed, err := o.logisticalRoles(ctx)
	if err != nil {
		return nil, err
	}

	var (
		previous *armylist.Detachment
		removed  []*armylist.Unit
	)
	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		det, err := findDetachment(l, input.DetachmentID)
		if err != nil {
			return err
		}
		detTmpl, err := o.detachmentTemplate(ctx, det)
		if err != nil {
			return err
		}
		previous = det.Clone()
		removed, err = engine.ChangeLogisticalRole(detTmpl, det, input.TriggeredBy, input.Role, allowed)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ChangeLogisticalRoleOutput{
		Snapshot: snap,
		Previous: previous,
		Removed:  cloneUnits(removed),
	}, nil
}

// GetDetachmentSlots returns the ordered slots of a detachment with their occupants
func (o *orchestrator) GetDetachmentSlots(ctx context.Context, input *GetDetachmentSlotsInput) (*GetDetachmentSlotsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	snap, err := o.load(ctx, input.ListID)
	if err != nil {
		return nil, err
	}
	det, err := findDetachment(snap.List, input.DetachmentID)
	if err != nil {
		return nil, err
	}
	det = det.Clone()
	detTmpl, err := o.detachmentTemplate(ctx, det)
	if err != nil {
		return nil, err
	}

	slots := engine.ComputeSlots(detTmpl, det)
	if slots == nil {
		slots = []engine.SlotView{}
	}

	return &GetDetachmentSlotsOutput{Detachment: det, Slots: slots}, nil
}

// AddDetachment adds an Apex or Auxiliary detachment when an unlock is available
func (o *orchestrator) AddDetachment(ctx context.Context, input *AddDetachmentInput) (_ *AddDetachmentOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}
	ctx, span := o.startSpan(ctx, "AddDetachment", input.ListID)
	defer func() { endSpan(span, err) }()

	detTmpl, err := o.catalog.GetDetachmentTemplate(ctx, input.TemplateID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get detachment template %s", input.TemplateID)
	}

	var added *armylist.Detachment
	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		if !detTmpl.Matches(l.Army, l.Faction) {
			return errors.FailedPreconditionf("%s is not available to %s %s", detTmpl.Name, l.Faction, l.Army).
				WithMeta("template_id", detTmpl.ID)
		}
		var err error
		added, err = engine.AddDetachment(l, detTmpl, o.detIDs.Generate())
		return err
	})
	if err != nil {
		return nil, err
	}

	det, _ := snap.List.Detachment(added.ID)
	slog.Info("Detachment added",
		"list_id", input.ListID,
		"detachment_id", added.ID,
		"type", added.Type,
		"triggered_by", added.TriggeredBy,
	)

	return &AddDetachmentOutput{Snapshot: snap, Detachment: det}, nil
}

// RemoveDetachment removes a secondary detachment and hands it back for RestoreDetachment
func (o *orchestrator) RemoveDetachment(ctx context.Context, input *RemoveDetachmentInput) (_ *RemoveDetachmentOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "RemoveDetachment", input.ListID)
	defer func() { endSpan(span, err) }()

	var removed *armylist.Detachment
	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		if input.DetachmentID == "" {
			return errors.InvalidArgument("detachment ID is required")
		}
		var err error
		removed, err = engine.RemoveDetachment(l, input.DetachmentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &RemoveDetachmentOutput{Snapshot: snap, Removed: removed.Clone()}, nil
}

// RestoreDetachment puts a removed detachment back into the list
func (o *orchestrator) RestoreDetachment(
	ctx context.Context,
	input *RestoreDetachmentInput,
) (_ *RestoreDetachmentOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Detachment == nil {
		return nil, errors.InvalidArgument("detachment snapshot is required")
	}
	ctx, span := o.startSpan(ctx, "RestoreDetachment", input.ListID)
	defer func() { endSpan(span, err) }()

	snap, err := o.mutate(ctx, input.ListID, func(l *armylist.List) error {
		return engine.RestoreDetachment(l, input.Detachment)
	})
	if err != nil {
		return nil, err
	}

	return &RestoreDetachmentOutput{Snapshot: snap}, nil
}

// AvailableUnlocks reports how many more Apex and Auxiliary detachments may be added
func (o *orchestrator) AvailableUnlocks(ctx context.Context, input *AvailableUnlocksInput) (*AvailableUnlocksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	snap, err := o.load(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	return &AvailableUnlocksOutput{Unlocks: engine.AvailableUnlocks(snap.List)}, nil
}

func (o *orchestrator) logisticalRoles(ctx context.Context) ([]armylist.Role, error) {
	settings, err := o.catalog.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get catalog settings")
	}
	return settings.LogisticalRoles, nil
}
