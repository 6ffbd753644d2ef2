package usecase_match

import (
	"context"
	"errors"
	"testing"

	"github.com/cinematch/core/internal/model"
	mocks_profile "github.com/cinematch/core/internal/usecase/match/mocks/match/profile"
	mocks_watchlist "github.com/cinematch/core/internal/usecase/match/mocks/match/watchlist"
	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseMatchUnitSuite struct {
	suite.Suite

	mockWatchlists *mocks_watchlist.WatchlistRepository
	mockProfiles   *mocks_profile.ProfileRepository
	usecase        *Usecase
	ctx            context.Context
}

func itemsFor(userID uuid.UUID, externalIDs ...int64) []model.WatchlistItem {
	items := make([]model.WatchlistItem, len(externalIDs))
	for i, id := range externalIDs {
		items[i] = model.WatchlistItem{
			UserID:     userID,
			ExternalID: id,
			Title:      "title",
		}
	}
	return items
}

func externalIDs(items []model.WatchlistItem) []int64 {
	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ExternalID
	}
	return ids
}

func (s *UsecaseMatchUnitSuite) BeforeEach(t provider.T) {
	s.mockWatchlists = mocks_watchlist.NewWatchlistRepository(t)
	s.mockProfiles = mocks_profile.NewProfileRepository(t)
	s.usecase = New(s.mockWatchlists, s.mockProfiles)
	s.ctx = context.Background()
}

func (s *UsecaseMatchUnitSuite) TestFindMatches(t provider.T) {
	t.Run("Should return the overlap from the partner's rows", func(t provider.T) {
		callerID, partnerID := uuid.New(), uuid.New()

		s.mockWatchlists.On("LoadByUser", s.ctx, callerID).
			Return(itemsFor(callerID, 1, 2, 3), nil).Once()
		s.mockWatchlists.On("LoadByUser", s.ctx, partnerID).
			Return(itemsFor(partnerID, 2, 3, 4), nil).Once()

		matches, err := s.usecase.FindMatches(s.ctx, callerID, partnerID)

		assert.NoError(t, err)
		assert.ElementsMatch(t, []int64{2, 3}, externalIDs(matches))
		for _, m := range matches {
			assert.Equal(t, partnerID, m.UserID)
		}
		s.mockWatchlists.AssertExpectations(t)
	})

	t.Run("Should return empty for disjoint watchlists", func(t provider.T) {
		callerID, partnerID := uuid.New(), uuid.New()

		s.mockWatchlists.On("LoadByUser", s.ctx, callerID).
			Return(itemsFor(callerID, 1, 2), nil).Once()
		s.mockWatchlists.On("LoadByUser", s.ctx, partnerID).
			Return(itemsFor(partnerID, 3, 4), nil).Once()

		matches, err := s.usecase.FindMatches(s.ctx, callerID, partnerID)

		assert.NoError(t, err)
		assert.Empty(t, matches)
		s.mockWatchlists.AssertExpectations(t)
	})

	t.Run("Should return empty when either side is empty", func(t provider.T) {
		callerID, partnerID := uuid.New(), uuid.New()

		s.mockWatchlists.On("LoadByUser", s.ctx, callerID).
			Return(nil, nil).Once()
		s.mockWatchlists.On("LoadByUser", s.ctx, partnerID).
			Return(itemsFor(partnerID, 3), nil).Once()

		matches, err := s.usecase.FindMatches(s.ctx, callerID, partnerID)

		assert.NoError(t, err)
		assert.Empty(t, matches)
		s.mockWatchlists.AssertExpectations(t)
	})
}

func (s *UsecaseMatchUnitSuite) TestFindMatchesByUsername(t provider.T) {
	t.Run("Should resolve the partner by username", func(t provider.T) {
		callerID := uuid.New()
		partner := model.User{ID: uuid.New(), Username: "alex"}

		s.mockProfiles.On("LoadByUsername", s.ctx, "alex").
			Return(partner, nil).Once()
		s.mockWatchlists.On("LoadByUser", s.ctx, callerID).
			Return(itemsFor(callerID, 7), nil).Once()
		s.mockWatchlists.On("LoadByUser", s.ctx, partner.ID).
			Return(itemsFor(partner.ID, 7), nil).Once()

		matches, err := s.usecase.FindMatchesByUsername(s.ctx, callerID, "alex")

		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		s.mockProfiles.AssertExpectations(t)
		s.mockWatchlists.AssertExpectations(t)
	})

	t.Run("Should report an unknown partner", func(t provider.T) {
		s.mockProfiles.On("LoadByUsername", s.ctx, "ghost").
			Return(model.User{}, errors.New("profile not found")).Once()

		_, err := s.usecase.FindMatchesByUsername(s.ctx, uuid.New(), "ghost")

		assert.ErrorIs(t, err, ErrPartnerNotFound)
		s.mockProfiles.AssertExpectations(t)
	})

	t.Run("Should refuse matching against yourself", func(t provider.T) {
		callerID := uuid.New()
		self := model.User{ID: callerID, Username: "me"}

		s.mockProfiles.On("LoadByUsername", s.ctx, "me").
			Return(self, nil).Once()

		_, err := s.usecase.FindMatchesByUsername(s.ctx, callerID, "me")

		assert.ErrorIs(t, err, ErrInvalidInput)
		s.mockProfiles.AssertExpectations(t)
	})

	t.Run("Should reject an empty username", func(t provider.T) {
		_, err := s.usecase.FindMatchesByUsername(s.ctx, uuid.New(), "")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMatchUnitSuite))
}
