package api

import (
	"github.com/oapi-codegen/runtime/types"
)

type MovieStatus string

const (
	COMINGSOON MovieStatus = "COMING_SOON"
	NOWSHOWING MovieStatus = "NOW_SHOWING"
)

type GetMoviesParams struct {
	Page     *int    `validate:"omitempty,min=1"`
	PageSize *int    `validate:"omitempty,min=1,max=100"`
	Term     *string `validate:"omitempty,max=100"`
	Sort     *string `validate:"omitempty,oneof=id title release_date -id -title -release_date"`
}

type MovieSummary struct {
	Id          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PosterUrl   string      `json:"posterUrl"`
	ReleaseDate types.Date  `json:"releaseDate"`
	Status      MovieStatus `json:"status"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type MovieResponse struct {
	Id          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Genres      []string    `json:"genres"`
	Language    string      `json:"language"`
	Rating      string      `json:"rating"`
	Duration    int         `json:"duration"`
	Director    string      `json:"director"`
	CastMembers []string    `json:"castMembers"`
	PosterUrl   string      `json:"posterUrl"`
	HeroUrl     string      `json:"heroUrl"`
	TrailerUrl  string      `json:"trailerUrl"`
	ReleaseDate types.Date  `json:"releaseDate"`
	Status      MovieStatus `json:"status"`
	IsActive    bool        `json:"isActive"`
	Version     int         `json:"version"`
}

type CreateMovieRequest struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Genres      []string   `json:"genres" validate:"required,min=1,dive,max=50"`
	Language    string     `json:"language" validate:"required,max=50"`
	Rating      string     `json:"rating" validate:"max=10"`
	Duration    int        `json:"duration" validate:"required,min=1,max=600"`
	Director    string     `json:"director" validate:"max=100"`
	CastMembers []string   `json:"castMembers" validate:"omitempty,dive,max=100"`
	PosterUrl   string     `json:"posterUrl" validate:"omitempty,url"`
	HeroUrl     string     `json:"heroUrl" validate:"omitempty,url"`
	TrailerUrl  string     `json:"trailerUrl" validate:"omitempty,url"`
	ReleaseDate types.Date `json:"releaseDate" validate:"required"`
	IsActive    bool       `json:"isActive"`
}

type UpdateMovieRequest struct {
	Name        *string     `json:"name" validate:"omitempty,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=2000"`
	Genres      *[]string   `json:"genres" validate:"omitempty,min=1,dive,max=50"`
	Language    *string     `json:"language" validate:"omitempty,max=50"`
	Rating      *string     `json:"rating" validate:"omitempty,max=10"`
	Duration    *int        `json:"duration" validate:"omitempty,min=1,max=600"`
	Director    *string     `json:"director" validate:"omitempty,max=100"`
	CastMembers *[]string   `json:"castMembers" validate:"omitempty,dive,max=100"`
	PosterUrl   *string     `json:"posterUrl" validate:"omitempty,url"`
	HeroUrl     *string     `json:"heroUrl" validate:"omitempty,url"`
	TrailerUrl  *string     `json:"trailerUrl" validate:"omitempty,url"`
	ReleaseDate *types.Date `json:"releaseDate"`
	IsActive    *bool       `json:"isActive"`
}
