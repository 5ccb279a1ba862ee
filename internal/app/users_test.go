package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/cinetick/movie-ticket-booking/api"
	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/cinetick/movie-ticket-booking/internal/mocks"
	"github.com/stretchr/testify/suite"
)

type UsersTestSuite struct {
	suite.Suite
	app      *Application
	userRepo *mocks.MockUserRepo
}

func (s *UsersTestSuite) SetupTest() {
	s.userRepo = new(mocks.MockUserRepo)

	s.app = newTestApplication(func(a *Application) {
		a.userRepo = s.userRepo
	})
}

func TestUsersSuite(t *testing.T) {
	suite.Run(t, new(UsersTestSuite))
}

func (s *UsersTestSuite) TestGetCurrentUser() {
	s.Run("should return the authenticated user", func() {
		s.SetupTest()

		s.userRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.User, error) {
			s.Equal(1, id)
			return &domain.User{
				ID:        1,
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane@example.com",
				Role:      domain.RoleUser,
				Activated: true,
				CreatedAt: time.Now(),
				Version:   1,
			}, nil
		}

		w, r := executeRequest(s.T(), http.MethodGet, "/users/me", nil)
		r = withUser(r, 1)

		s.app.GetCurrentUser(w, r)

		s.Require().Equal(http.StatusOK, w.Code)

		var resp api.UserResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Equal("jane@example.com", resp.Email)
		s.Equal(string(domain.RoleUser), resp.Role)
	})

	s.Run("should return not found when the account no longer exists", func() {
		s.SetupTest()

		s.userRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.User, error) {
			return nil, domain.ErrRecordNotFound
		}

		w, r := executeRequest(s.T(), http.MethodGet, "/users/me", nil)
		r = withUser(r, 1)

		s.app.GetCurrentUser(w, r)

		s.Equal(http.StatusNotFound, w.Code)
	})
}
