package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context, page, perPage int) (Page, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
}

// Repository is the read-only data-access contract for movies.
type Repository interface {
	CountMovies(ctx context.Context) (int64, error)
	ListMovies(ctx context.Context, offset, limit int) ([]Movie, error)
	// GetMovie returns ErrMovieNotFound when no row has the given id.
	GetMovie(ctx context.Context, id int64) (Movie, error)
}

// Sessions hands out a Repository bound to one data-access session.
// The session is released when fn returns, whatever the outcome.
type Sessions interface {
	Session(ctx context.Context, fn func(r Repository) error) error
}

type Usecase struct {
	s Sessions
}

func NewUsecase(s Sessions) *Usecase {
	return &Usecase{s: s}
}

func (uc *Usecase) ListMovies(ctx context.Context, page, perPage int) (Page, error) {
	if err := ValidatePagination(page, perPage); err != nil {
		return Page{}, err
	}

	var result Page
	err := uc.s.Session(ctx, func(r Repository) error {
		total, err := r.CountMovies(ctx)
		if err != nil {
			return err
		}
		if total == 0 {
			return ErrNoMovies
		}
		totalPages := TotalPages(total, perPage)
		// Checked before Offset so a huge page cannot overflow into a valid window.
		if page > totalPages {
			return ErrNoMovies
		}

		movies, err := r.ListMovies(ctx, Offset(page, perPage), perPage)
		if err != nil {
			return err
		}
		if len(movies) == 0 {
			return ErrNoMovies
		}

		result = Page{
			Movies:     movies,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
			TotalItems: total,
		}
		return nil
	})
	if err != nil {
		return Page{}, err
	}

	return result, nil
}

func (uc *Usecase) GetMovie(ctx context.Context, id int64) (Movie, error) {
	var m Movie
	err := uc.s.Session(ctx, func(r Repository) error {
		var err error
		m, err = r.GetMovie(ctx, id)
		return err
	})
	if err != nil {
		return Movie{}, err
	}
	return m, nil
}
