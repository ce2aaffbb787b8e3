// Package roster implements the army list orchestrator. Every mutation clones
// the committed list, applies one engine operation, reprices and validates the
// result, publishes it as the new committed state, saves it and notifies watchers.
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/KirkDiggler/crusade-api/internal/orchestrators/roster Service

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/crusade-api/internal/catalog"
	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/pkg/clock"
	"github.com/KirkDiggler/crusade-api/internal/pkg/idgen"
	"github.com/KirkDiggler/crusade-api/internal/repositories/lists"
)

const tracerName = "github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"

// DefaultOwnerID owns lists created without an explicit owner
const DefaultOwnerID = "local"

// Service defines the interface for army list operations
type Service interface {
	CreateList(ctx context.Context, input *CreateListInput) (*CreateListOutput, error)
	GetList(ctx context.Context, input *GetListInput) (*GetListOutput, error)
	ListLists(ctx context.Context, input *ListListsInput) (*ListListsOutput, error)
	DeleteList(ctx context.Context, input *DeleteListInput) (*DeleteListOutput, error)

	AddUnit(ctx context.Context, input *AddUnitInput) (*AddUnitOutput, error)
	RemoveUnit(ctx context.Context, input *RemoveUnitInput) (*RemoveUnitOutput, error)
	RestoreUnit(ctx context.Context, input *RestoreUnitInput) (*RestoreUnitOutput, error)
	UpdateUnitEquipment(ctx context.Context, input *UpdateUnitEquipmentInput) (*UpdateUnitEquipmentOutput, error)
	GetUnitOptions(ctx context.Context, input *GetUnitOptionsInput) (*GetUnitOptionsOutput, error)
	SetPrimeBenefit(ctx context.Context, input *SetPrimeBenefitInput) (*SetPrimeBenefitOutput, error)

	AddLogisticalRole(ctx context.Context, input *AddLogisticalRoleInput) (*AddLogisticalRoleOutput, error)
	RemoveLogisticalRole(ctx context.Context, input *RemoveLogisticalRoleInput) (*RemoveLogisticalRoleOutput, error)
	ChangeLogisticalRole(ctx context.Context, input *ChangeLogisticalRoleInput) (*ChangeLogisticalRoleOutput, error)
	GetDetachmentSlots(ctx context.Context, input *GetDetachmentSlotsInput) (*GetDetachmentSlotsOutput, error)

	AddDetachment(ctx context.Context, input *AddDetachmentInput) (*AddDetachmentOutput, error)
	RemoveDetachment(ctx context.Context, input *RemoveDetachmentInput) (*RemoveDetachmentOutput, error)
	RestoreDetachment(ctx context.Context, input *RestoreDetachmentInput) (*RestoreDetachmentOutput, error)
	AvailableUnlocks(ctx context.Context, input *AvailableUnlocksInput) (*AvailableUnlocksOutput, error)

	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)
	ConfirmSettings(ctx context.Context, input *ConfirmSettingsInput) (*ConfirmSettingsOutput, error)
	CancelSettings(ctx context.Context, input *CancelSettingsInput) (*CancelSettingsOutput, error)

	ListDetachmentTemplates(ctx context.Context, input *ListDetachmentTemplatesInput) (*ListDetachmentTemplatesOutput, error)
	ListUnitTemplates(ctx context.Context, input *ListUnitTemplatesInput) (*ListUnitTemplatesOutput, error)
	ListPrimeBenefits(ctx context.Context, input *ListPrimeBenefitsInput) (*ListPrimeBenefitsOutput, error)
	GetCatalogSettings(ctx context.Context, input *GetCatalogSettingsInput) (*GetCatalogSettingsOutput, error)

	ExportList(ctx context.Context, input *ExportListInput) (*ExportListOutput, error)
}

// Notifier receives every committed change
type Notifier interface {
	Notify(ctx context.Context, event *Event)
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	Catalog  catalog.Lookup
	ListRepo lists.Repository
	Engine   *engine.Engine

	// Optional
	Notifier      Notifier
	Clock         clock.Clock
	ListIDs       idgen.Generator
	DetachmentIDs idgen.Generator
	UnitIDs       idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.ListRepo == nil {
		vb.RequiredField("ListRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog  catalog.Lookup
	listRepo lists.Repository
	engine   *engine.Engine
	notifier Notifier
	clock    clock.Clock
	listIDs  idgen.Generator
	detIDs   idgen.Generator
	unitIDs  idgen.Generator
	tracer   trace.Tracer

	// mu serializes mutations so each commit sees the previous one
	mu          sync.Mutex
	committed   map[string]*Snapshot
	pendingSets map[string]*engine.ListSettings
}

// NewOrchestrator creates a new roster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		catalog:     cfg.Catalog,
		listRepo:    cfg.ListRepo,
		engine:      cfg.Engine,
		notifier:    cfg.Notifier,
		clock:       cfg.Clock,
		listIDs:     cfg.ListIDs,
		detIDs:      cfg.DetachmentIDs,
		unitIDs:     cfg.UnitIDs,
		tracer:      otel.Tracer(tracerName),
		committed:   make(map[string]*Snapshot),
		pendingSets: make(map[string]*engine.ListSettings),
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.listIDs == nil {
		o.listIDs = idgen.NewUUID(idgen.ListPrefix)
	}
	if o.detIDs == nil {
		o.detIDs = idgen.NewUUID(idgen.DetachmentPrefix)
	}
	if o.unitIDs == nil {
		o.unitIDs = idgen.NewUUID(idgen.UnitPrefix)
	}

	return o, nil
}

func (o *orchestrator) startSpan(ctx context.Context, name, listID string) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, "roster."+name, trace.WithAttributes(listIDAttr(listID)))
}

func listIDAttr(listID string) attribute.KeyValue {
	return attribute.String("list.id", listID)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errors.GetMessage(err))
	}
	span.End()
}

// load returns the committed snapshot, reading through to the repository on a
// cache miss. Callers must hold o.mu.
func (o *orchestrator) load(ctx context.Context, listID string) (*Snapshot, error) {
	if listID == "" {
		return nil, errors.InvalidArgument("list ID is required")
	}
	if snap, ok := o.committed[listID]; ok {
		return snap, nil
	}

	out, err := o.listRepo.Get(ctx, lists.GetInput{ID: listID})
	if err != nil {
		return nil, err
	}

	// Stored lists are re-derived so a stale stored total never leaks out
	templates, err := o.detachmentTemplates(ctx, out.List)
	if err != nil {
		return nil, err
	}
	list, validation := engine.Commit(out.List, templates)
	snap := &Snapshot{List: list, Validation: validation}
	o.committed[listID] = snap

	return snap, nil
}

// mutate runs fn against a clone of the committed list and commits the result.
// A failing fn leaves the committed state untouched.
func (o *orchestrator) mutate(
	ctx context.Context,
	listID string,
	fn func(candidate *armylist.List) error,
) (*Snapshot, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	current, err := o.load(ctx, listID)
	if err != nil {
		return nil, err
	}

	candidate := current.List.Clone()
	if err := fn(candidate); err != nil {
		return nil, err
	}

	return o.commit(ctx, candidate)
}

// commit prices, validates, publishes, saves and notifies. Callers must hold o.mu.
func (o *orchestrator) commit(ctx context.Context, candidate *armylist.List) (*Snapshot, error) {
	templates, err := o.detachmentTemplates(ctx, candidate)
	if err != nil {
		return nil, err
	}

	candidate.UpdatedAt = o.clock.Now().Unix()
	list, validation := engine.Commit(candidate, templates)
	snap := &Snapshot{List: list, Validation: validation}
	o.committed[list.ID] = snap

	if _, err := o.listRepo.Save(ctx, lists.SaveInput{List: list}); err != nil {
		slog.Error("Failed to save list",
			"list_id", list.ID,
			"error", err,
		)
		snap.PersistError = errors.GetMessage(err)
	}

	out := snap.clone()
	o.notify(ctx, &Event{Type: EventListUpdated, ListID: list.ID, Snapshot: snap.clone()})

	return out, nil
}

func (o *orchestrator) notify(ctx context.Context, event *Event) {
	if o.notifier == nil {
		return
	}
	o.notifier.Notify(ctx, event)
}

// detachmentTemplates fetches the template of every detachment in the list.
// Templates that are gone from the catalog are left out.
func (o *orchestrator) detachmentTemplates(
	ctx context.Context,
	list *armylist.List,
) (map[string]*armylist.DetachmentTemplate, error) {
	templates := make(map[string]*armylist.DetachmentTemplate, len(list.Detachments))
	for _, det := range list.Detachments {
		if _, ok := templates[det.TemplateID]; ok {
			continue
		}
		tmpl, err := o.catalog.GetDetachmentTemplate(ctx, det.TemplateID)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.Warn("Detachment template missing from catalog",
					"list_id", list.ID,
					"template_id", det.TemplateID,
				)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get detachment template %s", det.TemplateID)
		}
		templates[det.TemplateID] = tmpl
	}
	return templates, nil
}

// unitTemplates fetches the template of every unit in the list
func (o *orchestrator) unitTemplates(
	ctx context.Context,
	list *armylist.List,
) (map[string]*armylist.UnitTemplate, error) {
	templates := make(map[string]*armylist.UnitTemplate)
	for _, det := range list.Detachments {
		for _, unit := range det.Units {
			if _, ok := templates[unit.TemplateID]; ok {
				continue
			}
			tmpl, err := o.catalog.GetUnitTemplate(ctx, unit.TemplateID)
			if err != nil {
				if errors.IsNotFound(err) {
					continue
				}
				return nil, errors.Wrapf(err, "failed to get unit template %s", unit.TemplateID)
			}
			templates[unit.TemplateID] = tmpl
		}
	}
	return templates, nil
}

// detachmentTemplate returns the template of det or FailedPrecondition when
// the catalog no longer has it
func (o *orchestrator) detachmentTemplate(ctx context.Context, det *armylist.Detachment) (*armylist.DetachmentTemplate, error) {
	tmpl, err := o.catalog.GetDetachmentTemplate(ctx, det.TemplateID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPreconditionf("detachment template %s is no longer in the catalog", det.TemplateID).
				WithMeta("detachment_id", det.ID)
		}
		return nil, errors.Wrapf(err, "failed to get detachment template %s", det.TemplateID)
	}
	return tmpl, nil
}

func findDetachment(list *armylist.List, detachmentID string) (*armylist.Detachment, error) {
	if detachmentID == "" {
		return nil, errors.InvalidArgument("detachment ID is required")
	}
	det, _ := list.Detachment(detachmentID)
	if det == nil {
		return nil, errors.NotFoundf("detachment %s not found in list %s", detachmentID, list.ID)
	}
	return det, nil
}

func findUnit(list *armylist.List, unitID string) (*armylist.Detachment, *armylist.Unit, error) {
	if unitID == "" {
		return nil, nil, errors.InvalidArgument("unit ID is required")
	}
	det, unit := list.FindUnit(unitID)
	if unit == nil {
		return nil, nil, errors.NotFoundf("unit %s not found in list %s", unitID, list.ID)
	}
	return det, unit, nil
}

func (s *Snapshot) clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.List = s.List.Clone()
	if s.Validation != nil {
		v := *s.Validation
		v.Warnings = append([]engine.Warning(nil), s.Validation.Warnings...)
		v.Inconsistencies = append([]engine.Inconsistency(nil), s.Validation.Inconsistencies...)
		if v.Warnings == nil {
			v.Warnings = []engine.Warning{}
		}
		out.Validation = &v
	}
	return &out
}
