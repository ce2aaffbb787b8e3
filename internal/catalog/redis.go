package catalog

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	redisclient "github.com/KirkDiggler/crusade-api/internal/redis"
)

const (
	unitKeyPrefix       = "catalog:unit:"
	detachmentKeyPrefix = "catalog:detachment:"
	weaponListKeyPrefix = "catalog:weaponlist:"
	benefitKeyPrefix    = "catalog:benefit:"

	unitIndexKey       = "catalog:units"
	detachmentIndexKey = "catalog:detachments"
	weaponListIndexKey = "catalog:weaponlists"
	benefitIndexKey    = "catalog:benefits"
	settingsKey        = "catalog:settings"
)

// RedisConfig contains configuration for the Redis catalog
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// Redis is a catalog stored in Redis. Besides Lookup it exposes the admin
// writes used to maintain units, detachments, weapon lists and benefits.
// Listings are ordered by id.
type Redis struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed catalog
func NewRedis(cfg *RedisConfig) (*Redis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Redis{client: cfg.Client}, nil
}

// GetUnitTemplate implements Lookup
func (r *Redis) GetUnitTemplate(ctx context.Context, id string) (*armylist.UnitTemplate, error) {
	return getJSON[armylist.UnitTemplate](ctx, r.client, unitKeyPrefix, "unit template", id)
}

// GetDetachmentTemplate implements Lookup
func (r *Redis) GetDetachmentTemplate(ctx context.Context, id string) (*armylist.DetachmentTemplate, error) {
	return getJSON[armylist.DetachmentTemplate](ctx, r.client, detachmentKeyPrefix, "detachment template", id)
}

// GetWeaponList implements Lookup
func (r *Redis) GetWeaponList(ctx context.Context, id string) (*armylist.WeaponList, error) {
	return getJSON[armylist.WeaponList](ctx, r.client, weaponListKeyPrefix, "weapon list", id)
}

// ListDetachmentTemplates implements Lookup
func (r *Redis) ListDetachmentTemplates(
	ctx context.Context,
	input *ListDetachmentTemplatesInput,
) ([]*armylist.DetachmentTemplate, error) {
	all, err := listJSON[armylist.DetachmentTemplate](ctx, r.client, detachmentIndexKey, detachmentKeyPrefix)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(d *armylist.DetachmentTemplate) bool {
		return !matchDetachment(d, input)
	}), nil
}

// ListUnitTemplates implements Lookup
func (r *Redis) ListUnitTemplates(ctx context.Context, input *ListUnitTemplatesInput) ([]*armylist.UnitTemplate, error) {
	all, err := listJSON[armylist.UnitTemplate](ctx, r.client, unitIndexKey, unitKeyPrefix)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(u *armylist.UnitTemplate) bool {
		return !matchUnit(u, input)
	}), nil
}

// ListWeaponLists returns every weapon list
func (r *Redis) ListWeaponLists(ctx context.Context) ([]*armylist.WeaponList, error) {
	return listJSON[armylist.WeaponList](ctx, r.client, weaponListIndexKey, weaponListKeyPrefix)
}

// ListPrimeBenefits implements Lookup
func (r *Redis) ListPrimeBenefits(ctx context.Context) ([]*armylist.PrimeBenefit, error) {
	return listJSON[armylist.PrimeBenefit](ctx, r.client, benefitIndexKey, benefitKeyPrefix)
}

// GetSettings implements Lookup
func (r *Redis) GetSettings(ctx context.Context) (*Settings, error) {
	result, err := r.client.Get(ctx, settingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("catalog settings not found")
		}
		return nil, errors.Wrap(err, "failed to get catalog settings")
	}

	var settings Settings
	if err := json.Unmarshal([]byte(result), &settings); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal catalog settings")
	}
	return &settings, nil
}

// PutUnitTemplate creates or replaces a unit template. Weapon list references
// must point at lists already in the catalog.
func (r *Redis) PutUnitTemplate(ctx context.Context, tmpl *armylist.UnitTemplate) error {
	if tmpl == nil {
		return errors.InvalidArgument("unit template is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", tmpl.ID, vb)
	errors.ValidateRequired("name", tmpl.Name, vb)
	errors.ValidateRequired("army", tmpl.Army, vb)
	if !tmpl.Role.IsValid() {
		vb.Fieldf("role", "unknown role %q", tmpl.Role)
	}
	if tmpl.BaseCost < 0 {
		vb.Field("base_cost", "must not be negative")
	}
	for gi, group := range tmpl.EquipmentOptions {
		if group.Mode != armylist.SelectionModeCheckbox && group.Mode != armylist.SelectionModeRadio {
			vb.Fieldf("equipment_options", "group %d has unknown selection mode %q", gi, group.Mode)
		}
		for _, option := range group.Options {
			if option.Cost < 0 {
				vb.Fieldf("equipment_options", "option %q in group %d has a negative cost", option.Name, gi)
			}
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	for _, group := range tmpl.EquipmentOptions {
		for _, option := range group.Options {
			if !option.IsReference() {
				continue
			}
			if _, err := r.GetWeaponList(ctx, option.ListID); err != nil {
				return errors.Wrapf(err, "unit %s references weapon list %s", tmpl.ID, option.ListID)
			}
		}
	}

	return putJSON(ctx, r.client, unitIndexKey, unitKeyPrefix, tmpl.ID, tmpl)
}

// DeleteUnitTemplate removes a unit template
func (r *Redis) DeleteUnitTemplate(ctx context.Context, id string) error {
	return deleteJSON(ctx, r.client, unitIndexKey, unitKeyPrefix, "unit template", id)
}

// PutDetachmentTemplate creates or replaces a detachment template
func (r *Redis) PutDetachmentTemplate(ctx context.Context, tmpl *armylist.DetachmentTemplate) error {
	if tmpl == nil {
		return errors.InvalidArgument("detachment template is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", tmpl.ID, vb)
	errors.ValidateRequired("name", tmpl.Name, vb)
	if !tmpl.Type.IsValid() {
		vb.Fieldf("type", "unknown detachment type %q", tmpl.Type)
	}
	for i, spec := range tmpl.RoleSlots {
		if !spec.Role.IsValid() {
			vb.Fieldf("role_slots", "slot %d has unknown role %q", i, spec.Role)
		}
		if spec.Quantity < 1 {
			vb.Fieldf("role_slots", "slot %d must have a positive quantity", i)
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	return putJSON(ctx, r.client, detachmentIndexKey, detachmentKeyPrefix, tmpl.ID, tmpl)
}

// DeleteDetachmentTemplate removes a detachment template. The Primary template cannot be removed.
func (r *Redis) DeleteDetachmentTemplate(ctx context.Context, id string) error {
	if id == armylist.PrimaryDetachmentTemplateID {
		return errors.FailedPreconditionf("detachment template %s cannot be removed", id)
	}
	return deleteJSON(ctx, r.client, detachmentIndexKey, detachmentKeyPrefix, "detachment template", id)
}

// PutWeaponList creates or replaces a weapon list
func (r *Redis) PutWeaponList(ctx context.Context, list *armylist.WeaponList) error {
	if list == nil {
		return errors.InvalidArgument("weapon list is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", list.ID, vb)
	errors.ValidateRequired("name", list.Name, vb)
	for i, item := range list.Items {
		if strings.TrimSpace(item.Name) == "" {
			vb.Fieldf("items", "item %d has no name", i)
		}
		if item.Cost < 0 {
			vb.Fieldf("items", "item %q has a negative cost", item.Name)
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	return putJSON(ctx, r.client, weaponListIndexKey, weaponListKeyPrefix, list.ID, list)
}

// DeleteWeaponList removes a weapon list that no unit template references
func (r *Redis) DeleteWeaponList(ctx context.Context, id string) error {
	units, err := r.ListUnitTemplates(ctx, nil)
	if err != nil {
		return err
	}
	for _, u := range units {
		for _, group := range u.EquipmentOptions {
			for _, option := range group.Options {
				if option.IsReference() && option.ListID == id {
					return errors.FailedPreconditionf("weapon list %s is used by unit %s", id, u.ID).
						WithMeta("unit_id", u.ID)
				}
			}
		}
	}
	return deleteJSON(ctx, r.client, weaponListIndexKey, weaponListKeyPrefix, "weapon list", id)
}

// PutPrimeBenefit creates or replaces a prime benefit
func (r *Redis) PutPrimeBenefit(ctx context.Context, benefit *armylist.PrimeBenefit) error {
	if benefit == nil {
		return errors.InvalidArgument("prime benefit is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", benefit.ID, vb)
	errors.ValidateRequired("name", benefit.Name, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	return putJSON(ctx, r.client, benefitIndexKey, benefitKeyPrefix, benefit.ID, benefit)
}

// PutSettings replaces the catalog settings
func (r *Redis) PutSettings(ctx context.Context, settings *Settings) error {
	if settings == nil {
		return errors.InvalidArgument("settings are required")
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal catalog settings")
	}
	if err := r.client.Set(ctx, settingsKey, data, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save catalog settings")
	}
	return nil
}

// Seed writes every entry of data. Weapon lists go first so unit references resolve.
func (r *Redis) Seed(ctx context.Context, data *Data) error {
	if data == nil {
		return errors.InvalidArgument("catalog data is required")
	}

	if err := r.PutSettings(ctx, data.Settings); err != nil {
		return err
	}
	for _, w := range data.WeaponLists {
		if err := r.PutWeaponList(ctx, w); err != nil {
			return errors.Wrapf(err, "failed to seed weapon list %s", w.ID)
		}
	}
	for _, d := range data.Detachments {
		if err := r.PutDetachmentTemplate(ctx, d); err != nil {
			return errors.Wrapf(err, "failed to seed detachment %s", d.ID)
		}
	}
	for _, u := range data.Units {
		if err := r.PutUnitTemplate(ctx, u); err != nil {
			return errors.Wrapf(err, "failed to seed unit %s", u.ID)
		}
	}
	for _, b := range data.Benefits {
		if err := r.PutPrimeBenefit(ctx, b); err != nil {
			return errors.Wrapf(err, "failed to seed prime benefit %s", b.ID)
		}
	}
	return nil
}

func getJSON[T any](ctx context.Context, client redisclient.Client, prefix, kind, id string) (*T, error) {
	if id == "" {
		return nil, errors.InvalidArgumentf("%s id is required", kind)
	}

	result, err := client.Get(ctx, prefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s %s not found", kind, id)
		}
		return nil, errors.Wrapf(err, "failed to get %s %s", kind, id)
	}

	var v T
	if err := json.Unmarshal([]byte(result), &v); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s %s", kind, id)
	}
	return &v, nil
}

func listJSON[T any](ctx context.Context, client redisclient.Client, indexKey, prefix string) ([]*T, error) {
	ids, err := client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index %s", indexKey)
	}
	out := []*T{}
	if len(ids) == 0 {
		return out, nil
	}
	slices.Sort(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = prefix + id
	}
	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s entries", indexKey)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// index entry without a value, skip it
			continue
		}
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s", keys[i])
		}
		out = append(out, &v)
	}
	return out, nil
}

func putJSON(ctx context.Context, client redisclient.Client, indexKey, prefix, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", prefix+id)
	}

	pipe := client.TxPipeline()
	pipe.Set(ctx, prefix+id, data, 0)
	pipe.SAdd(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to save %s", prefix+id)
	}
	return nil
}

func deleteJSON(ctx context.Context, client redisclient.Client, indexKey, prefix, kind, id string) error {
	if id == "" {
		return errors.InvalidArgumentf("%s id is required", kind)
	}

	exists, err := client.Exists(ctx, prefix+id).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to check %s %s", kind, id)
	}
	if exists == 0 {
		return errors.NotFoundf("%s %s not found", kind, id)
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, prefix+id)
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete %s %s", kind, id)
	}
	return nil
}
