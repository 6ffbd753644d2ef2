package service_suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cinematch/core/internal/model"
	mocks "github.com/cinematch/core/internal/service/suggest/mocks/suggest/searcher"
	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ServiceSuggestUnitSuite struct {
	suite.Suite

	mockSearcher *mocks.Searcher
	service      *Service
	ctx          context.Context
}

const (
	idleDelay    = 30 * time.Millisecond
	suggestLimit = 5
)

func suggestedUsers(usernames ...string) []model.User {
	users := make([]model.User, len(usernames))
	for i, name := range usernames {
		users[i] = model.User{ID: uuid.New(), Username: name}
	}
	return users
}

func (s *ServiceSuggestUnitSuite) BeforeEach(t provider.T) {
	s.mockSearcher = mocks.NewSearcher(t)
	s.service = New(s.mockSearcher, idleDelay, suggestLimit)
	s.ctx = context.Background()
}

func (s *ServiceSuggestUnitSuite) TestSuggest(t provider.T) {
	t.Run("Should look up the prefix after the idle window", func(t provider.T) {
		callerID := uuid.New()
		expected := suggestedUsers("alex", "alexa")

		s.mockSearcher.On("SearchByPrefix", mock.Anything, "al", callerID, suggestLimit).
			Return(expected, nil).Once()

		users, err := s.service.Suggest(s.ctx, "session-1", callerID, "al")

		assert.NoError(t, err)
		assert.Equal(t, expected, users)
		s.mockSearcher.AssertExpectations(t)
	})

	t.Run("Should return nothing for an empty prefix", func(t provider.T) {
		users, err := s.service.Suggest(s.ctx, "session-1", uuid.New(), "")

		assert.NoError(t, err)
		assert.Nil(t, users)
	})

	t.Run("Should wrap searcher failures", func(t provider.T) {
		callerID := uuid.New()

		s.mockSearcher.On("SearchByPrefix", mock.Anything, "al", callerID, suggestLimit).
			Return(nil, errors.New("connection reset")).Once()

		_, err := s.service.Suggest(s.ctx, "session-1", callerID, "al")

		assert.ErrorIs(t, err, ErrInternal)
		s.mockSearcher.AssertExpectations(t)
	})
}

func (s *ServiceSuggestUnitSuite) TestDebounce(t provider.T) {
	t.Run("Should supersede the pending query with a newer one", func(t provider.T) {
		callerID := uuid.New()
		expected := suggestedUsers("alex")

		// Only the final query is expected to reach the store.
		s.mockSearcher.On("SearchByPrefix", mock.Anything, "ale", callerID, suggestLimit).
			Return(expected, nil).Once()

		firstDone := make(chan error, 1)
		go func() {
			_, err := s.service.Suggest(s.ctx, "session-1", callerID, "al")
			firstDone <- err
		}()

		// Let the first call arm its timer, then type the next character.
		time.Sleep(idleDelay / 3)

		users, err := s.service.Suggest(s.ctx, "session-1", callerID, "ale")

		assert.NoError(t, err)
		assert.Equal(t, expected, users)
		assert.ErrorIs(t, <-firstDone, ErrSuperseded)
		s.mockSearcher.AssertExpectations(t)
	})

	t.Run("Should keep requesters independent", func(t provider.T) {
		callerA, callerB := uuid.New(), uuid.New()

		s.mockSearcher.On("SearchByPrefix", mock.Anything, "al", callerA, suggestLimit).
			Return(suggestedUsers("alex"), nil).Once()
		s.mockSearcher.On("SearchByPrefix", mock.Anything, "bo", callerB, suggestLimit).
			Return(suggestedUsers("bob"), nil).Once()

		aDone := make(chan error, 1)
		go func() {
			_, err := s.service.Suggest(s.ctx, "session-a", callerA, "al")
			aDone <- err
		}()

		time.Sleep(idleDelay / 3)

		_, err := s.service.Suggest(s.ctx, "session-b", callerB, "bo")

		assert.NoError(t, err)
		assert.NoError(t, <-aDone)
		s.mockSearcher.AssertExpectations(t)
	})

	t.Run("Should report cancellation of the caller's own context", func(t provider.T) {
		ctx, cancel := context.WithCancel(s.ctx)

		done := make(chan error, 1)
		go func() {
			_, err := s.service.Suggest(ctx, "session-1", uuid.New(), "al")
			done <- err
		}()

		time.Sleep(idleDelay / 3)
		cancel()

		assert.ErrorIs(t, <-done, ErrSuperseded)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ServiceSuggestUnitSuite))
}
