package movie

import "theater/errs"

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 20
)

var (
	ErrNoMovies       = errs.Errorf(errs.ENOTFOUND, "No movies found.")
	ErrMovieNotFound  = errs.Errorf(errs.ENOTFOUND, "Movie with the given ID was not found.")
	ErrInvalidPage    = errs.Errorf(errs.EINVALID, "page must be greater than or equal to 1")
	ErrInvalidPerPage = errs.Errorf(errs.EINVALID, "per_page must be between 1 and %d", MaxPerPage)
)

type Movie struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Score     float64 `json:"score"`
	Genre     string  `json:"genre"`
	Overview  string  `json:"overview"`
	Crew      string  `json:"crew"`
	OrigTitle string  `json:"orig_title"`
	Status    string  `json:"status"`
	OrigLang  string  `json:"orig_lang"`
	Budget    float64 `json:"budget"`
	Revenue   float64 `json:"revenue"`
	Country   string  `json:"country"`
}

// Page is one 1-indexed slice of the movies ordered by ascending id.
type Page struct {
	Movies     []Movie
	Page       int
	PerPage    int
	TotalPages int
	TotalItems int64
}

func (p Page) HasPrev() bool {
	return p.Page > 1
}

func (p Page) HasNext() bool {
	return p.Page < p.TotalPages
}

// TotalPages returns ceil(total/perPage).
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Offset returns the zero-based number of rows skipped before page.
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}

func ValidatePagination(page, perPage int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	if perPage < 1 || perPage > MaxPerPage {
		return ErrInvalidPerPage
	}
	return nil
}
