package roster

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/repositories/lists"
)

// CreateList creates a list holding an empty Crusade Primary detachment
func (o *orchestrator) CreateList(ctx context.Context, input *CreateListInput) (_ *CreateListOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "CreateList", "")
	defer func() { endSpan(span, err) }()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", strings.TrimSpace(input.Name), vb)
	if input.PointsLimit < 0 {
		vb.InvalidField("points_limit", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	settings, err := o.catalog.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get catalog settings")
	}
	if err := settings.ValidateListSettings(input.Army, input.Faction, input.Allegiance); err != nil {
		return nil, err
	}

	primaryTmpl, err := o.catalog.GetDetachmentTemplate(ctx, armylist.PrimaryDetachmentTemplateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get primary detachment template")
	}

	owner := input.OwnerID
	if owner == "" {
		owner = DefaultOwnerID
	}
	now := o.clock.Now().Unix()
	list := &armylist.List{
		ID:          o.listIDs.Generate(),
		OwnerID:     owner,
		Name:        strings.TrimSpace(input.Name),
		Army:        input.Army,
		Faction:     input.Faction,
		Allegiance:  input.Allegiance,
		PointsLimit: input.PointsLimit,
		Detachments: []*armylist.Detachment{{
			ID:         o.detIDs.Generate(),
			TemplateID: primaryTmpl.ID,
			Name:       primaryTmpl.Name,
			Type:       armylist.DetachmentTypePrimary,
			IsValid:    true,
			Units:      []*armylist.Unit{},
			AddedRoles: []armylist.RoleSlotSpec{},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	span.SetAttributes(listIDAttr(list.ID))

	o.mu.Lock()
	defer o.mu.Unlock()

	snap, err := o.commit(ctx, list)
	if err != nil {
		return nil, err
	}

	slog.Info("List created",
		"list_id", list.ID,
		"owner_id", owner,
		"army", list.Army,
		"faction", list.Faction,
	)

	return &CreateListOutput{Snapshot: snap}, nil
}

// GetList returns the committed snapshot of a list
func (o *orchestrator) GetList(ctx context.Context, input *GetListInput) (*GetListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	snap, err := o.load(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	return &GetListOutput{Snapshot: snap.clone()}, nil
}

// ListLists returns summaries of an owner's lists, most recently updated first
func (o *orchestrator) ListLists(ctx context.Context, input *ListListsInput) (*ListListsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	owner := input.OwnerID
	if owner == "" {
		owner = DefaultOwnerID
	}

	out, err := o.listRepo.ListByOwner(ctx, lists.ListByOwnerInput{OwnerID: owner})
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	summaries := make([]*ListSummary, 0, len(out.Lists))
	for _, stored := range out.Lists {
		// Prefer the committed state, it may be ahead of a failed save
		l := stored
		if snap, ok := o.committed[stored.ID]; ok {
			l = snap.List
		}
		summaries = append(summaries, summarize(l))
	}

	return &ListListsOutput{Lists: summaries}, nil
}

// DeleteList removes a list from memory and storage
func (o *orchestrator) DeleteList(ctx context.Context, input *DeleteListInput) (_ *DeleteListOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ListID == "" {
		return nil, errors.InvalidArgument("list ID is required")
	}
	ctx, span := o.startSpan(ctx, "DeleteList", input.ListID)
	defer func() { endSpan(span, err) }()

	o.mu.Lock()
	defer o.mu.Unlock()

	_, cached := o.committed[input.ListID]
	if _, err := o.listRepo.Delete(ctx, lists.DeleteInput{ID: input.ListID}); err != nil {
		// A list whose first save failed only exists in memory
		if !errors.IsNotFound(err) || !cached {
			return nil, err
		}
	}
	delete(o.committed, input.ListID)
	delete(o.pendingSets, input.ListID)

	slog.Info("List deleted", "list_id", input.ListID)
	o.notify(ctx, &Event{Type: EventListDeleted, ListID: input.ListID})

	return &DeleteListOutput{}, nil
}

func summarize(l *armylist.List) *ListSummary {
	return &ListSummary{
		ID:          l.ID,
		Name:        l.Name,
		Army:        l.Army,
		Faction:     l.Faction,
		Allegiance:  l.Allegiance,
		PointsLimit: l.PointsLimit,
		TotalPoints: l.TotalPoints,
		Detachments: len(l.Detachments),
		UpdatedAt:   l.UpdatedAt,
	}
}
