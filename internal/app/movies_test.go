package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/cinetick/movie-ticket-booking/api"
	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/cinetick/movie-ticket-booking/internal/mocks"
	"github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/suite"
)

type MoviesTestSuite struct {
	suite.Suite
	app       *Application
	movieRepo *mocks.MockMovieRepo
}

func (s *MoviesTestSuite) SetupTest() {
	s.movieRepo = new(mocks.MockMovieRepo)

	s.app = newTestApplication(func(a *Application) {
		a.movieRepo = s.movieRepo
	})
}

func TestMoviesSuite(t *testing.T) {
	suite.Run(t, new(MoviesTestSuite))
}

func (s *MoviesTestSuite) TestGetMovies() {
	tests := []struct {
		name           string
		url            string
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		wantCount      int
	}{
		{
			name:           "should fail when page is not an integer",
			url:            "/movies?page=abc",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "query parameter page must be an integer",
		},
		{
			name:       "should fail when sort column is not allowed",
			url:        "/movies?sort=salary",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "should fail when the listing cannot be read",
			url:  "/movies",
			setupMocks: func() {
				s.movieRepo.GetAllFunc = func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
					return nil, nil, fmt.Errorf("database error")
				}
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should apply defaults and return movies",
			url:  "/movies",
			setupMocks: func() {
				s.movieRepo.GetAllFunc = func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
					s.Equal(DefaultPage, filters.Page)
					s.Equal(DefaultPageSize, filters.PageSize)
					s.Equal(DefaultSort, filters.Sort)

					movies := []*domain.Movie{
						{ID: 1, Title: "Inception", ReleaseDate: time.Now().AddDate(-1, 0, 0)},
						{ID: 2, Title: "Dune 3", ReleaseDate: time.Now().AddDate(1, 0, 0)},
					}
					return movies, domain.NewMetadata(2, filters.Page, filters.PageSize), nil
				}
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name: "should pass search term and sort through to the repository",
			url:  "/movies?term=dune&sort=-release_date&page=2&pageSize=5",
			setupMocks: func() {
				s.movieRepo.GetAllFunc = func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
					s.Equal("dune", filters.Term)
					s.Equal("-release_date", filters.Sort)
					s.Equal(2, filters.Page)
					s.Equal(5, filters.PageSize)
					return nil, domain.NewMetadata(0, filters.Page, filters.PageSize), nil
				}
			},
			wantStatus: http.StatusOK,
			wantCount:  0,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodGet, tt.url, nil)

			s.app.GetMovies(w, r)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp api.MovieListResponse
			s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
			s.Len(resp.Movies, tt.wantCount)
		})
	}
}

func (s *MoviesTestSuite) TestGetMovie() {
	s.Run("should classify released movies as now showing", func() {
		s.SetupTest()

		s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
			return &domain.Movie{ID: id, Title: "Inception", ReleaseDate: time.Now().AddDate(-1, 0, 0), IsActive: true}, nil
		}

		w, r := executeRequest(s.T(), http.MethodGet, "/movies/1", nil)
		r = withURLParams(r, map[string]string{"movieId": "1"})

		s.app.GetMovie(w, r)

		s.Require().Equal(http.StatusOK, w.Code)

		var resp api.MovieResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Equal(api.NOWSHOWING, resp.Status)
	})

	s.Run("should return not found for missing movie", func() {
		s.SetupTest()

		s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
			return nil, domain.ErrRecordNotFound
		}

		w, r := executeRequest(s.T(), http.MethodGet, "/movies/99", nil)
		r = withURLParams(r, map[string]string{"movieId": "99"})

		s.app.GetMovie(w, r)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *MoviesTestSuite) TestCreateMovie() {
	validBody := api.CreateMovieRequest{
		Name:        "Dune 3",
		Genres:      []string{"Sci-Fi"},
		Language:    "English",
		Duration:    166,
		ReleaseDate: types.Date{Time: time.Now().AddDate(0, 6, 0)},
		IsActive:    true,
	}

	s.Run("should fail validation without required fields", func() {
		s.SetupTest()

		w, r := executeRequest(s.T(), http.MethodPost, "/admin/movies", api.CreateMovieRequest{})
		r = withUser(r, 1)

		s.app.CreateMovie(w, r)

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("should create a movie", func() {
		s.SetupTest()

		s.movieRepo.CreateFunc = func(ctx context.Context, movie *domain.Movie) error {
			s.Equal("Dune 3", movie.Title)
			movie.ID = 42
			movie.Version = 1
			return nil
		}

		w, r := executeRequest(s.T(), http.MethodPost, "/admin/movies", validBody)
		r = withUser(r, 1)

		s.app.CreateMovie(w, r)

		s.Require().Equal(http.StatusCreated, w.Code)

		var resp api.MovieResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Equal(42, resp.Id)
		s.Equal(api.COMINGSOON, resp.Status)
	})
}

func (s *MoviesTestSuite) TestUpdateMovie() {
	existing := func(id int) *domain.Movie {
		return &domain.Movie{
			ID:          id,
			Title:       "Inception",
			Genres:      []string{"Sci-Fi"},
			Language:    "English",
			Duration:    148,
			ReleaseDate: time.Now().AddDate(-1, 0, 0),
			IsActive:    true,
			Version:     3,
		}
	}

	s.Run("should apply only the provided fields", func() {
		s.SetupTest()

		s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
			return existing(id), nil
		}
		s.movieRepo.UpdateFunc = func(ctx context.Context, movie *domain.Movie) error {
			s.Equal("Inception (Remastered)", movie.Title)
			s.Equal("English", movie.Language)
			s.False(movie.IsActive)
			return nil
		}

		body := api.UpdateMovieRequest{
			Name:     ptr("Inception (Remastered)"),
			IsActive: ptr(false),
		}

		w, r := executeRequest(s.T(), http.MethodPatch, "/admin/movies/1", body)
		r = withUser(r, 1)
		r = withURLParams(r, map[string]string{"movieId": "1"})

		s.app.UpdateMovie(w, r)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("should report a conflict on concurrent edits", func() {
		s.SetupTest()

		s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
			return existing(id), nil
		}
		s.movieRepo.UpdateFunc = func(ctx context.Context, movie *domain.Movie) error {
			return domain.ErrEditConflict
		}

		body := api.UpdateMovieRequest{Name: ptr("Inception 2")}

		w, r := executeRequest(s.T(), http.MethodPatch, "/admin/movies/1", body)
		r = withUser(r, 1)
		r = withURLParams(r, map[string]string{"movieId": "1"})

		s.app.UpdateMovie(w, r)

		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *MoviesTestSuite) TestDeleteMovie() {
	s.Run("should delete an existing movie", func() {
		s.SetupTest()

		s.movieRepo.DeleteFunc = func(ctx context.Context, id int) error {
			s.Equal(7, id)
			return nil
		}

		w, r := executeRequest(s.T(), http.MethodDelete, "/admin/movies/7", nil)
		r = withUser(r, 1)
		r = withURLParams(r, map[string]string{"movieId": "7"})

		s.app.DeleteMovie(w, r)

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("should return not found for missing movie", func() {
		s.SetupTest()

		s.movieRepo.DeleteFunc = func(ctx context.Context, id int) error {
			return domain.ErrRecordNotFound
		}

		w, r := executeRequest(s.T(), http.MethodDelete, "/admin/movies/99", nil)
		r = withUser(r, 1)
		r = withURLParams(r, map[string]string{"movieId": "99"})

		s.app.DeleteMovie(w, r)

		s.Equal(http.StatusNotFound, w.Code)
	})
}
