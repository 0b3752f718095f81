package usecase_room

import (
	"context"
	"errors"
	"testing"

	"github.com/happydoodle/core/internal/model"
	repo_mocks "github.com/happydoodle/core/internal/usecase/room/mocks/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseRoomUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	roomRepo *repo_mocks.RoomRepository
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	roomRepo := repo_mocks.NewRoomRepository(t)
	return &resources{
		usecase:  New(roomRepo),
		roomRepo: roomRepo,
		ctx:      context.Background(),
	}
}

func validRoomID() model.RoomID {
	return model.RoomID("7f9c2ba4-e88f-4a0b-a249-77f395b2d8f1")
}

func (s *UsecaseRoomUnitSuite) TestBuildLinks(t provider.T) {
	testCases := []struct {
		name             string
		base             string
		expectedJoin     string
		expectedSpectate string
	}{
		{
			name:             "Should build both links on the origin",
			base:             "https://doodle.example.com",
			expectedJoin:     "https://doodle.example.com/room/" + string(validRoomID()),
			expectedSpectate: "https://doodle.example.com/vote/" + string(validRoomID()),
		},
		{
			name:             "Should trim a trailing slash",
			base:             "http://localhost:8080/",
			expectedJoin:     "http://localhost:8080/room/" + string(validRoomID()),
			expectedSpectate: "http://localhost:8080/vote/" + string(validRoomID()),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			links := BuildLinks(tc.base, validRoomID())

			assert.Equal(t, validRoomID(), links.ID)
			assert.Equal(t, tc.expectedJoin, links.JoinURL)
			assert.Equal(t, tc.expectedSpectate, links.SpectateURL)
		})
	}
}

func (s *UsecaseRoomUnitSuite) TestCreate(t provider.T) {
	t.Run("Should create room and return links", func(t provider.T) {
		r := initResources(t)
		roomID := validRoomID()

		r.roomRepo.On("Create", r.ctx).Return(roomID, nil).Once()

		links, err := r.usecase.Create(r.ctx, "https://doodle.example.com")

		assert.NoError(t, err)
		assert.Equal(t, roomID, links.ID)
		assert.Equal(t, "https://doodle.example.com/room/"+string(roomID), links.JoinURL)
		assert.Equal(t, "https://doodle.example.com/vote/"+string(roomID), links.SpectateURL)
		r.roomRepo.AssertExpectations(t)
	})

	t.Run("Should return error when repository fails", func(t provider.T) {
		r := initResources(t)

		r.roomRepo.On("Create", r.ctx).Return(model.EmptyRoomID, errors.New("insert failed")).Once()

		links, err := r.usecase.Create(r.ctx, "https://doodle.example.com")

		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, links.JoinURL)
		r.roomRepo.AssertExpectations(t)
	})
}

func (s *UsecaseRoomUnitSuite) TestPrompt(t provider.T) {
	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expected      string
		expectedError error
	}{
		{
			name: "Should return the stored prompt",
			setupMocks: func(r *resources) {
				r.roomRepo.On("PromptByID", r.ctx, validRoomID()).Return("A cat surfing", nil).Once()
			},
			expected: "A cat surfing",
		},
		{
			name: "Should return empty prompt before the first round",
			setupMocks: func(r *resources) {
				r.roomRepo.On("PromptByID", r.ctx, validRoomID()).Return("", nil).Once()
			},
			expected: "",
		},
		{
			name: "Should pass not-found through untouched",
			setupMocks: func(r *resources) {
				r.roomRepo.On("PromptByID", r.ctx, validRoomID()).Return("", ErrResourceNotFound).Once()
			},
			expectedError: ErrResourceNotFound,
		},
		{
			name: "Should wrap other repository errors",
			setupMocks: func(r *resources) {
				r.roomRepo.On("PromptByID", r.ctx, validRoomID()).Return("", errors.New("timeout")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			r := initResources(t)
			tc.setupMocks(r)

			prompt, err := r.usecase.Prompt(r.ctx, validRoomID())

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, prompt)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (s *UsecaseRoomUnitSuite) TestSetPrompt(t provider.T) {
	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should persist the prompt",
			setupMocks: func(r *resources) {
				r.roomRepo.On("SetPrompt", r.ctx, validRoomID(), "A wizard doing laundry").Return(nil).Once()
			},
		},
		{
			name: "Should pass not-found through untouched",
			setupMocks: func(r *resources) {
				r.roomRepo.On("SetPrompt", r.ctx, validRoomID(), "A wizard doing laundry").
					Return(ErrResourceNotFound).Once()
			},
			expectedError: ErrResourceNotFound,
		},
		{
			name: "Should wrap other repository errors",
			setupMocks: func(r *resources) {
				r.roomRepo.On("SetPrompt", r.ctx, validRoomID(), "A wizard doing laundry").
					Return(errors.New("timeout")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.SetPrompt(r.ctx, validRoomID(), "A wizard doing laundry")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoomUnitSuite))
}
