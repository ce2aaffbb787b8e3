package roster

import (
	"context"

	"github.com/KirkDiggler/crusade-api/internal/catalog"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/export"
)

// GetCatalogSettingsInput defines the request for the catalog settings
type GetCatalogSettingsInput struct{}

// GetCatalogSettingsOutput carries the armies, allegiances and logistical roles
type GetCatalogSettingsOutput struct {
	Settings *catalog.Settings
}

// ListDetachmentTemplates returns the detachment templates a list may use
func (o *orchestrator) ListDetachmentTemplates(
	ctx context.Context,
	input *ListDetachmentTemplatesInput,
) (*ListDetachmentTemplatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	filter := &catalog.ListDetachmentTemplatesInput{Type: input.Type}
	if input.ListID != "" {
		l, err := o.listCopy(ctx, input.ListID)
		if err != nil {
			return nil, err
		}
		filter.Army = l.Army
		filter.Faction = l.Faction
	}

	templates, err := o.catalog.ListDetachmentTemplates(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list detachment templates")
	}

	return &ListDetachmentTemplatesOutput{Templates: templates}, nil
}

// ListUnitTemplates returns the unit templates a list may field, optionally for one role
func (o *orchestrator) ListUnitTemplates(ctx context.Context, input *ListUnitTemplatesInput) (*ListUnitTemplatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	filter := &catalog.ListUnitTemplatesInput{Role: input.Role}
	if input.ListID != "" {
		l, err := o.listCopy(ctx, input.ListID)
		if err != nil {
			return nil, err
		}
		filter.Army = l.Army
		filter.Faction = l.Faction
		filter.Allegiance = l.Allegiance
	}

	templates, err := o.catalog.ListUnitTemplates(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unit templates")
	}

	return &ListUnitTemplatesOutput{Templates: templates}, nil
}

// ListPrimeBenefits returns every prime benefit in the catalog
func (o *orchestrator) ListPrimeBenefits(ctx context.Context, input *ListPrimeBenefitsInput) (*ListPrimeBenefitsOutput, error) {
	benefits, err := o.catalog.ListPrimeBenefits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prime benefits")
	}
	return &ListPrimeBenefitsOutput{Benefits: benefits}, nil
}

// GetCatalogSettings returns the values list settings are validated against
func (o *orchestrator) GetCatalogSettings(ctx context.Context, input *GetCatalogSettingsInput) (*GetCatalogSettingsOutput, error) {
	settings, err := o.catalog.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get catalog settings")
	}
	return &GetCatalogSettingsOutput{Settings: settings}, nil
}

// ExportList builds the read-only roster document of a list
func (o *orchestrator) ExportList(ctx context.Context, input *ExportListInput) (_ *ExportListOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "ExportList", input.ListID)
	defer func() { endSpan(span, err) }()

	o.mu.Lock()
	snap, err := o.load(ctx, input.ListID)
	if err == nil {
		snap = snap.clone()
	}
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	roster, err := export.Build(ctx, o.catalog, snap.List, snap.Validation)
	if err != nil {
		return nil, err
	}

	return &ExportListOutput{Roster: roster}, nil
}

func (o *orchestrator) listCopy(ctx context.Context, listID string) (*armylist.List, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap, err := o.load(ctx, listID)
	if err != nil {
		return nil, err
	}
	return snap.List.Clone(), nil
}
