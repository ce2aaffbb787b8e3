package roster

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// UpdateSettings changes name, army, faction, allegiance and points limit.
// When the new army, faction or allegiance would invalidate units the change
// is held as pending until ConfirmSettings or CancelSettings.
func (o *orchestrator) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (_ *UpdateSettingsOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "UpdateSettings", input.ListID)
	defer func() { endSpan(span, err) }()

	settings := input.Settings
	settings.Name = strings.TrimSpace(settings.Name)
	if err := o.validateSettings(ctx, &settings); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	current, err := o.load(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	change, err := o.applySettings(ctx, current.List, &settings)
	if err != nil {
		return nil, err
	}

	if change.Status == engine.SettingsPendingConfirmation {
		o.pendingSets[input.ListID] = &settings
		slog.Info("Settings change awaiting confirmation",
			"list_id", input.ListID,
			"invalid_units", len(change.InvalidUnits),
		)
		return &UpdateSettingsOutput{
			Status:       change.Status,
			InvalidUnits: change.InvalidUnits,
		}, nil
	}

	delete(o.pendingSets, input.ListID)
	snap, err := o.commit(ctx, change.List)
	if err != nil {
		return nil, err
	}

	return &UpdateSettingsOutput{
		Status:       change.Status,
		InvalidUnits: change.InvalidUnits,
		Snapshot:     snap,
	}, nil
}

// ConfirmSettings applies the pending settings change and removes the units it invalidates.
// The change is recomputed against the current list, so edits made while it was
// pending are kept.
func (o *orchestrator) ConfirmSettings(ctx context.Context, input *ConfirmSettingsInput) (_ *ConfirmSettingsOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "ConfirmSettings", input.ListID)
	defer func() { endSpan(span, err) }()

	o.mu.Lock()
	defer o.mu.Unlock()

	settings, ok := o.pendingSets[input.ListID]
	if !ok {
		return nil, errors.FailedPreconditionf("list %s has no pending settings change", input.ListID)
	}

	current, err := o.load(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	change, err := o.applySettings(ctx, current.List, settings)
	if err != nil {
		return nil, err
	}
	confirmed, err := engine.ConfirmSettings(change)
	if err != nil {
		return nil, err
	}

	delete(o.pendingSets, input.ListID)
	snap, err := o.commit(ctx, confirmed)
	if err != nil {
		return nil, err
	}

	slog.Info("Settings change confirmed",
		"list_id", input.ListID,
		"removed_units", len(change.InvalidUnits),
	)

	return &ConfirmSettingsOutput{Snapshot: snap, Removed: change.InvalidUnits}, nil
}

// CancelSettings discards a pending settings change
func (o *orchestrator) CancelSettings(ctx context.Context, input *CancelSettingsInput) (*CancelSettingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ListID == "" {
		return nil, errors.InvalidArgument("list ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	_, ok := o.pendingSets[input.ListID]
	delete(o.pendingSets, input.ListID)

	return &CancelSettingsOutput{Discarded: ok}, nil
}

func (o *orchestrator) validateSettings(ctx context.Context, settings *engine.ListSettings) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", settings.Name, vb)
	if settings.PointsLimit < 0 {
		vb.InvalidField("points_limit", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	catalogSettings, err := o.catalog.GetSettings(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get catalog settings")
	}
	return catalogSettings.ValidateListSettings(settings.Army, settings.Faction, settings.Allegiance)
}

func (o *orchestrator) applySettings(
	ctx context.Context,
	list *armylist.List,
	settings *engine.ListSettings,
) (*engine.SettingsChange, error) {
	templates, err := o.unitTemplates(ctx, list)
	if err != nil {
		return nil, err
	}
	return engine.ApplySettings(list, settings, templates)
}
