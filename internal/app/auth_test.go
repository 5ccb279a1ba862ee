package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/cinetick/movie-ticket-booking/api"
	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/cinetick/movie-ticket-booking/internal/mailer"
	"github.com/cinetick/movie-ticket-booking/internal/mocks"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	suite.Suite
	app      *Application
	userRepo *mocks.MockUserRepo
	mailer   *mailer.MockMailer
}

func (s *AuthTestSuite) SetupTest() {
	s.userRepo = new(mocks.MockUserRepo)
	s.mailer = mailer.NewMockMailer()

	s.app = newTestApplication(func(a *Application) {
		a.userRepo = s.userRepo
		a.mailer = s.mailer
	})
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) TestRegisterUser() {
	validBody := api.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "S3cure!Password",
	}

	s.Run("should fail validation for malformed email", func() {
		s.SetupTest()

		body := validBody
		body.Email = "not-an-email"

		w, r := executeRequest(s.T(), http.MethodPost, "/users", body)

		s.app.RegisterUser(w, r)

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("should not leak existence of an already registered email", func() {
		s.SetupTest()

		s.userRepo.CreateWithTokenFunc = func(ctx context.Context, user *domain.User, tokenFn func(*domain.User) (*domain.Token, error)) (*domain.Token, error) {
			return nil, domain.ErrUserAlreadyExists
		}

		w, r := executeRequest(s.T(), http.MethodPost, "/users", validBody)

		s.app.RegisterUser(w, r)

		s.Equal(http.StatusBadRequest, w.Code)
		checkErrorResponse(s.T(), w, http.StatusBadRequest, "invalid input data")
	})

	s.Run("should register a user and queue the activation email", func() {
		s.SetupTest()

		s.userRepo.CreateWithTokenFunc = func(ctx context.Context, user *domain.User, tokenFn func(*domain.User) (*domain.Token, error)) (*domain.Token, error) {
			user.ID = 10
			user.CreatedAt = time.Now()
			return tokenFn(user)
		}

		w, r := executeRequest(s.T(), http.MethodPost, "/users", validBody)

		s.app.RegisterUser(w, r)

		s.Require().Equal(http.StatusAccepted, w.Code)

		var resp api.UserResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Equal(10, resp.Id)
		s.Equal("jane@example.com", resp.Email)
		s.False(resp.Activated)

		// the confirmation mail goes out on a separate goroutine
		s.Eventually(func() bool {
			return len(s.mailer.GetSentEmails()) == 1
		}, time.Second, 10*time.Millisecond)

		sent := s.mailer.GetSentEmails()[0]
		s.Equal("jane@example.com", sent.Recipient)
		s.Equal("user_welcome.tmpl", sent.TemplateFile)
	})
}

func (s *AuthTestSuite) TestActivateUser() {
	token, err := domain.GenerateToken(1, 10*time.Minute, domain.UserActivationScope)
	s.Require().NoError(err)

	body := api.UserActivationRequest{Token: token.Plaintext}

	s.Run("should fail when token is unknown", func() {
		s.SetupTest()

		s.userRepo.GetByTokenFunc = func(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
			return nil, domain.ErrRecordNotFound
		}

		w, r := executeRequest(s.T(), http.MethodPut, "/users/activated", body)

		s.app.ActivateUser(w, r)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("should report a conflict for an already activated user", func() {
		s.SetupTest()

		s.userRepo.GetByTokenFunc = func(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
			return &domain.User{ID: 1, Activated: true}, nil
		}

		w, r := executeRequest(s.T(), http.MethodPut, "/users/activated", body)

		s.app.ActivateUser(w, r)

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("should activate the user", func() {
		s.SetupTest()

		s.userRepo.GetByTokenFunc = func(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
			s.Equal(domain.UserActivationScope, scope)
			return &domain.User{ID: 1}, nil
		}
		s.userRepo.ActivateUserFunc = func(ctx context.Context, user *domain.User) error {
			return nil
		}

		w, r := executeRequest(s.T(), http.MethodPut, "/users/activated", body)

		s.app.ActivateUser(w, r)

		s.Require().Equal(http.StatusOK, w.Code)

		var resp api.UserActivationResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.True(resp.Activated)
	})
}

func (s *AuthTestSuite) TestLogin() {
	user := &domain.User{ID: 1, Email: "jane@example.com", Activated: true}
	s.Require().NoError(user.Password.Set("S3cure!Password"))

	s.Run("should reject bad credentials without detail", func() {
		s.SetupTest()

		s.userRepo.GetByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		}

		body := api.LoginRequest{Email: "jane@example.com", Password: "wrong-password"}

		w, r := executeRequest(s.T(), http.MethodPost, "/sessions", body)
		r = setupTestSession(s.T(), s.app, r, 0)

		s.app.Login(w, r)

		s.Equal(http.StatusUnauthorized, w.Code)
		checkErrorResponse(s.T(), w, http.StatusUnauthorized, ErrInvalidCreds)
	})

	s.Run("should reject unknown email the same way as a bad password", func() {
		s.SetupTest()

		s.userRepo.GetByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrRecordNotFound
		}

		body := api.LoginRequest{Email: "ghost@example.com", Password: "whatever1!"}

		w, r := executeRequest(s.T(), http.MethodPost, "/sessions", body)
		r = setupTestSession(s.T(), s.app, r, 0)

		s.app.Login(w, r)

		s.Equal(http.StatusUnauthorized, w.Code)
		checkErrorResponse(s.T(), w, http.StatusUnauthorized, ErrInvalidCreds)
	})

	s.Run("should start a session on valid credentials", func() {
		s.SetupTest()

		s.userRepo.GetByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			s.Equal("jane@example.com", email)
			return user, nil
		}

		body := api.LoginRequest{Email: "jane@example.com", Password: "S3cure!Password"}

		w, r := executeRequest(s.T(), http.MethodPost, "/sessions", body)
		r = setupTestSession(s.T(), s.app, r, 0)

		s.app.Login(w, r)

		s.Equal(http.StatusNoContent, w.Code)
		s.Equal(user.ID, s.app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String()))
	})

	s.Run("should short-circuit when already logged in", func() {
		s.SetupTest()

		body := api.LoginRequest{Email: "jane@example.com", Password: "S3cure!Password"}

		w, r := executeRequest(s.T(), http.MethodPost, "/sessions", body)
		r = setupTestSession(s.T(), s.app, r, 1)

		s.app.Login(w, r)

		s.Equal(http.StatusOK, w.Code)
	})
}

func (s *AuthTestSuite) TestLogout() {
	s.Run("should fail without an active session", func() {
		s.SetupTest()

		w, r := executeRequest(s.T(), http.MethodDelete, "/sessions", nil)
		r = setupTestSession(s.T(), s.app, r, 0)

		s.app.Logout(w, r)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("should destroy the session", func() {
		s.SetupTest()

		w, r := executeRequest(s.T(), http.MethodDelete, "/sessions", nil)
		r = setupTestSession(s.T(), s.app, r, 1)

		s.app.Logout(w, r)

		s.Equal(http.StatusNoContent, w.Code)
		s.Equal(0, s.app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String()))
	})
}
