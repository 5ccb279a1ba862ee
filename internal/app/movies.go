package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/cinetick/movie-ticket-booking/api"
	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	params, err := parseGetMoviesParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.MovieFilters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Term != nil {
		filters.Term = *params.Term
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieId, err := readIntParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := domain.Movie{
		Title:       input.Name,
		Description: input.Description,
		Genres:      input.Genres,
		Language:    input.Language,
		Rating:      input.Rating,
		ReleaseDate: input.ReleaseDate.Time,
		Duration:    input.Duration,
		PosterUrl:   input.PosterUrl,
		HeroUrl:     input.HeroUrl,
		TrailerUrl:  input.TrailerUrl,
		Director:    input.Director,
		CastMembers: input.CastMembers,
		IsActive:    input.IsActive,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiMovie(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieId, err := readIntParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateMovieRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	applyMovieUpdate(movie, input)

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieId, err := readIntParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func applyMovieUpdate(movie *domain.Movie, input api.UpdateMovieRequest) {
	if input.Name != nil {
		movie.Title = *input.Name
	}
	if input.Description != nil {
		movie.Description = *input.Description
	}
	if input.Genres != nil {
		movie.Genres = *input.Genres
	}
	if input.Language != nil {
		movie.Language = *input.Language
	}
	if input.Rating != nil {
		movie.Rating = *input.Rating
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.Director != nil {
		movie.Director = *input.Director
	}
	if input.CastMembers != nil {
		movie.CastMembers = *input.CastMembers
	}
	if input.PosterUrl != nil {
		movie.PosterUrl = *input.PosterUrl
	}
	if input.HeroUrl != nil {
		movie.HeroUrl = *input.HeroUrl
	}
	if input.TrailerUrl != nil {
		movie.TrailerUrl = *input.TrailerUrl
	}
	if input.ReleaseDate != nil {
		movie.ReleaseDate = input.ReleaseDate.Time
	}
	if input.IsActive != nil {
		movie.IsActive = *input.IsActive
	}
}

func parseGetMoviesParams(r *http.Request) (api.GetMoviesParams, error) {
	var params api.GetMoviesParams

	page, err := readQueryInt(r, "page")
	if err != nil {
		return params, err
	}

	pageSize, err := readQueryInt(r, "pageSize")
	if err != nil {
		return params, err
	}

	params.Page = page
	params.PageSize = pageSize
	params.Term = readQueryString(r, "term")
	params.Sort = readQueryString(r, "sort")

	return params, nil
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = api.MovieSummary{
			Id:          movie.ID,
			Name:        movie.Title,
			Description: movie.Description,
			PosterUrl:   movie.PosterUrl,
			ReleaseDate: types.Date{Time: movie.ReleaseDate},
			Status:      movieStatus(movie.ReleaseDate),
		}
	}

	return summaries
}

func toApiMovie(movie *domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:          movie.ID,
		Name:        movie.Title,
		Description: movie.Description,
		Genres:      movie.Genres,
		Language:    movie.Language,
		Rating:      movie.Rating,
		Duration:    movie.Duration,
		Director:    movie.Director,
		CastMembers: movie.CastMembers,
		PosterUrl:   movie.PosterUrl,
		HeroUrl:     movie.HeroUrl,
		TrailerUrl:  movie.TrailerUrl,
		ReleaseDate: types.Date{Time: movie.ReleaseDate},
		Status:      movieStatus(movie.ReleaseDate),
		IsActive:    movie.IsActive,
		Version:     movie.Version,
	}
}

func movieStatus(releaseDate time.Time) api.MovieStatus {
	if releaseDate.After(time.Now()) {
		return api.COMINGSOON
	}

	return api.NOWSHOWING
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
