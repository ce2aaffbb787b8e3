package lists_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/repositories/lists"
	"github.com/KirkDiggler/crusade-api/internal/testutils"
	"github.com/KirkDiggler/crusade-api/internal/testutils/builders"
)

// RepositoryTestSuite runs the same behaviour checks against every store
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T) (lists.Repository, func())
	repo    lists.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo, s.cleanup = s.newRepo(s.T())
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RepositoryTestSuite) sampleList() *armylist.List {
	return builders.NewListBuilder().
		WithPointsLimit(2000).
		WithUnit(builders.TestPrimaryID, builders.NewUnitBuilder("unit-1", testutils.PraetorTemplate(), 0).
			InPrimeSlot().
			WithEquipment("g0:o1", "Paragon blade", 25).
			WithBenefit(testutils.LogisticalBenefit()).
			Build()).
		WithAddedRole(builders.TestPrimaryID, armylist.RoleHeavySupport, "unit-1").
		Build()
}

func (s *RepositoryTestSuite) assertSameList(want, got *armylist.List) {
	wantJSON, err := json.Marshal(want)
	s.Require().NoError(err)
	gotJSON, err := json.Marshal(got)
	s.Require().NoError(err)
	s.JSONEq(string(wantJSON), string(gotJSON))
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	s.Run("round trips the whole list", func() {
		l := s.sampleList()

		_, err := s.repo.Save(s.ctx, lists.SaveInput{List: l})
		s.Require().NoError(err)

		out, err := s.repo.Get(s.ctx, lists.GetInput{ID: l.ID})
		s.Require().NoError(err)
		s.assertSameList(l, out.List)
		s.Equal("unit-1", out.List.Detachments[0].AddedRoles[0].TriggeredBy)
	})

	s.Run("save replaces an existing list", func() {
		l := s.sampleList()
		_, err := s.repo.Save(s.ctx, lists.SaveInput{List: l})
		s.Require().NoError(err)

		l.Name = "Renamed"
		l.UpdatedAt++
		_, err = s.repo.Save(s.ctx, lists.SaveInput{List: l})
		s.Require().NoError(err)

		out, err := s.repo.Get(s.ctx, lists.GetInput{ID: l.ID})
		s.Require().NoError(err)
		s.Equal("Renamed", out.List.Name)
	})

	s.Run("rejects invalid input", func() {
		_, err := s.repo.Save(s.ctx, lists.SaveInput{})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.repo.Save(s.ctx, lists.SaveInput{List: builders.NewListBuilder().WithID("").Build()})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.repo.Save(s.ctx, lists.SaveInput{List: builders.NewListBuilder().WithOwnerID("").Build()})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.repo.Get(s.ctx, lists.GetInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing list is not found", func() {
		_, err := s.repo.Get(s.ctx, lists.GetInput{ID: "nope"})
		s.True(errors.IsNotFound(err))
	})
}

func (s *RepositoryTestSuite) TestDelete() {
	s.Run("removes the list and its index entry", func() {
		l := s.sampleList()
		_, err := s.repo.Save(s.ctx, lists.SaveInput{List: l})
		s.Require().NoError(err)

		_, err = s.repo.Delete(s.ctx, lists.DeleteInput{ID: l.ID})
		s.Require().NoError(err)

		_, err = s.repo.Get(s.ctx, lists.GetInput{ID: l.ID})
		s.True(errors.IsNotFound(err))

		out, err := s.repo.ListByOwner(s.ctx, lists.ListByOwnerInput{OwnerID: l.OwnerID})
		s.Require().NoError(err)
		s.Empty(out.Lists)
	})

	s.Run("missing list is not found", func() {
		_, err := s.repo.Delete(s.ctx, lists.DeleteInput{ID: "nope"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty id is rejected", func() {
		_, err := s.repo.Delete(s.ctx, lists.DeleteInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RepositoryTestSuite) TestListByOwner() {
	s.Run("returns most recently updated first", func() {
		older := builders.NewListBuilder().WithID("list-a").WithUpdatedAt(100).Build()
		newer := builders.NewListBuilder().WithID("list-b").WithUpdatedAt(200).Build()
		tie := builders.NewListBuilder().WithID("list-c").WithUpdatedAt(100).Build()
		other := builders.NewListBuilder().WithID("list-d").WithOwnerID("someone-else").Build()

		for _, l := range []*armylist.List{older, newer, tie, other} {
			_, err := s.repo.Save(s.ctx, lists.SaveInput{List: l})
			s.Require().NoError(err)
		}

		out, err := s.repo.ListByOwner(s.ctx, lists.ListByOwnerInput{OwnerID: builders.TestOwnerID})
		s.Require().NoError(err)
		s.Require().Len(out.Lists, 3)
		s.Equal("list-b", out.Lists[0].ID)
		s.Equal("list-a", out.Lists[1].ID)
		s.Equal("list-c", out.Lists[2].ID)
	})

	s.Run("owner change moves the list", func() {
		l := builders.NewListBuilder().WithID("list-move").WithOwnerID("first").Build()
		_, err := s.repo.Save(s.ctx, lists.SaveInput{List: l})
		s.Require().NoError(err)

		l.OwnerID = "second"
		_, err = s.repo.Save(s.ctx, lists.SaveInput{List: l})
		s.Require().NoError(err)

		first, err := s.repo.ListByOwner(s.ctx, lists.ListByOwnerInput{OwnerID: "first"})
		s.Require().NoError(err)
		s.Empty(first.Lists)

		second, err := s.repo.ListByOwner(s.ctx, lists.ListByOwnerInput{OwnerID: "second"})
		s.Require().NoError(err)
		s.Require().Len(second.Lists, 1)
		s.Equal("list-move", second.Lists[0].ID)
	})

	s.Run("unknown owner has no lists", func() {
		out, err := s.repo.ListByOwner(s.ctx, lists.ListByOwnerInput{OwnerID: "nobody"})
		s.Require().NoError(err)
		s.NotNil(out.Lists)
		s.Empty(out.Lists)
	})

	s.Run("empty owner is rejected", func() {
		_, err := s.repo.ListByOwner(s.ctx, lists.ListByOwnerInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T) (lists.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := lists.NewRedis(&lists.RedisConfig{Client: client})
			if err != nil {
				t.Fatalf("new redis repository: %v", err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T) (lists.Repository, func()) {
			store, err := lists.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "lists.db"))
			if err != nil {
				t.Fatalf("open sqlite repository: %v", err)
			}
			return store, func() { _ = store.Close() }
		},
	})
}
