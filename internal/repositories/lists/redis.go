package lists

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	redisclient "github.com/KirkDiggler/crusade-api/internal/redis"
)

const (
	listKeyPrefix  = "list:"
	ownerKeyPrefix = "list:owner:"
)

// RedisConfig holds the dependencies for the Redis list store
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed list repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis list store config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

func listKey(id string) string {
	return listKeyPrefix + id
}

func ownerKey(owner string) string {
	return ownerKeyPrefix + owner
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errListIDEmpty)
	}

	l, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{List: l}, nil
}

func (r *redisRepository) get(ctx context.Context, id string) (*armylist.List, error) {
	result, err := r.client.Get(ctx, listKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("list with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get list")
	}

	var l armylist.List
	if err := json.Unmarshal([]byte(result), &l); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal list")
	}
	return &l, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateList(input.List); err != nil {
		return nil, err
	}

	// An owner change has to drop the list from the previous owner's index
	previous, err := r.get(ctx, input.List.ID)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	data, err := json.Marshal(input.List)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal list")
	}

	pipe := r.client.TxPipeline()
	if previous != nil && previous.OwnerID != input.List.OwnerID {
		pipe.SRem(ctx, ownerKey(previous.OwnerID), input.List.ID)
	}
	pipe.Set(ctx, listKey(input.List.ID), data, 0)
	pipe.SAdd(ctx, ownerKey(input.List.OwnerID), input.List.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save list")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errListIDEmpty)
	}

	existing, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, listKey(input.ID))
	pipe.SRem(ctx, ownerKey(existing.OwnerID), input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete list")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	ids, err := r.client.SMembers(ctx, ownerKey(input.OwnerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list owner lists")
	}
	if len(ids) == 0 {
		return &ListByOwnerOutput{Lists: []*armylist.List{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = listKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get lists")
	}

	out := make([]*armylist.List, 0, len(values))
	var stale []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry outlived its list
			stale = append(stale, ids[i])
			continue
		}
		var l armylist.List
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal list %s", ids[i])
		}
		out = append(out, &l)
	}

	if len(stale) > 0 {
		r.client.SRem(ctx, ownerKey(input.OwnerID), stale...)
	}

	sortByRecent(out)

	return &ListByOwnerOutput{Lists: out}, nil
}
