package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          int
	Title       string
	Description string
	Genres      []string
	Language    string
	Rating      string
	ReleaseDate time.Time
	Duration    int
	PosterUrl   string
	HeroUrl     string
	TrailerUrl  string
	Director    string
	CastMembers []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int
}

type MovieFilters struct {
	Page     int
	PageSize int
	Term     string
	Sort     string
}

func (f MovieFilters) Pagination() Pagination {
	return Pagination{
		Page:     f.Page,
		PageSize: f.PageSize,
		Term:     f.Term,
		Sort:     f.Sort,
	}
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
