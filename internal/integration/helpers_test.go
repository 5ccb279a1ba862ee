package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, cookie := range cookies {
		req.AddCookie(&cookie)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "createdAt"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func insertTestUser(t testing.TB, app *TestApp, email string, role domain.Role) int {
	t.Helper()

	user := domain.User{
		FirstName: TestUserFirstName,
		LastName:  TestUserLastName,
		Email:     email,
		Role:      role,
	}
	require.NoError(t, user.Password.Set(TestUserPassword))

	var id int
	err := app.DB.QueryRow(
		context.Background(),
		`INSERT INTO users (first_name, last_name, email, password_hash, role, activated)
		 VALUES ($1, $2, $3, $4, $5, true)
		 RETURNING id`,
		user.FirstName, user.LastName, user.Email, user.Password.Hash, user.Role,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestMovie(t testing.TB, app *TestApp, title string, isActive bool) int {
	t.Helper()

	var id int
	err := app.DB.QueryRow(
		context.Background(),
		`INSERT INTO movies (title, description, genres, language, duration, release_date, is_active)
		 VALUES ($1, 'A test movie.', $2, $3, $4, $5, $6)
		 RETURNING id`,
		title, []string{"Drama"}, TestMovieLanguage, TestMovieDuration, time.Now().AddDate(0, -1, 0), isActive,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// loginAs runs the login endpoint and returns the session cookie.
func loginAs(t testing.TB, app *TestApp, server *httptest.Server, email string) http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, TestUserPassword)

	resp, err := http.Post(server.URL+"/sessions", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_id" {
			return *cookie
		}
	}

	t.Fatal("no session cookie returned from login")
	return http.Cookie{}
}
