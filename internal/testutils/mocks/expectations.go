// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/repositories/lists"
	listrepomock "github.com/KirkDiggler/crusade-api/internal/repositories/lists/mock"
)

// Contexts are matched with gomock.Any since callers derive span contexts.

// ExpectListSave expects a save and succeeds. Use Times on the returned call
// for repeated saves.
func ExpectListSave(mockRepo *listrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(&lists.SaveOutput{}, nil)
}

// ExpectListSaveFailure expects a save that fails with err
func ExpectListSaveFailure(mockRepo *listrepomock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, err)
}

// ExpectListSaveOf expects a save and hands the stored list to check
func ExpectListSaveOf(mockRepo *listrepomock.MockRepository, check func(*armylist.List)) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input lists.SaveInput) (*lists.SaveOutput, error) {
			check(input.List)
			return &lists.SaveOutput{}, nil
		})
}

// ExpectListGet sets up a mock expectation for reading a list from the repository
func ExpectListGet(mockRepo *listrepomock.MockRepository, listID string, list *armylist.List, err error) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(gomock.Any(), lists.GetInput{ID: listID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(gomock.Any(), lists.GetInput{ID: listID}).
		Return(&lists.GetOutput{List: list}, nil)
}

// ExpectListByOwner sets up a mock expectation for an owner listing
func ExpectListByOwner(mockRepo *listrepomock.MockRepository, ownerID string, found ...*armylist.List) *gomock.Call {
	return mockRepo.EXPECT().
		ListByOwner(gomock.Any(), lists.ListByOwnerInput{OwnerID: ownerID}).
		Return(&lists.ListByOwnerOutput{Lists: found}, nil)
}

// ExpectListDelete sets up a mock expectation for deleting a list
func ExpectListDelete(mockRepo *listrepomock.MockRepository, listID string, err error) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Delete(gomock.Any(), lists.DeleteInput{ID: listID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Delete(gomock.Any(), lists.DeleteInput{ID: listID}).
		Return(&lists.DeleteOutput{}, nil)
}
