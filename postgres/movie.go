package postgres

import (
	"context"
	"errors"
	"theater/movie"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID        int64   `gorm:"primaryKey"`
	Name      string  `gorm:"not null"`
	Date      string  `gorm:"not null;default:''"`
	Score     float64 `gorm:"not null;default:0"`
	Genre     string  `gorm:"not null;default:''"`
	Overview  string  `gorm:"not null;default:''"`
	Crew      string  `gorm:"not null;default:''"`
	OrigTitle string  `gorm:"column:orig_title;not null;default:''"`
	Status    string  `gorm:"not null;default:''"`
	OrigLang  string  `gorm:"column:orig_lang;not null;default:''"`
	Budget    float64 `gorm:"not null;default:0"`
	Revenue   float64 `gorm:"not null;default:0"`
	Country   string  `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository and movie.Sessions.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Session pins a single pooled connection for the duration of fn and
// hands fn a repository bound to it. gorm returns the connection to the
// pool once fn returns, error or not.
func (r *MovieRepository) Session(ctx context.Context, fn func(movie.Repository) error) error {
	return r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(&MovieRepository{db: conn})
	})
}

func (r *MovieRepository) CountMovies(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&MovieModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *MovieRepository) ListMovies(ctx context.Context, offset, limit int) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = toDomainMovie(model)
	}
	return movies, nil
}

func (r *MovieRepository) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrMovieNotFound
		}
		return movie.Movie{}, err
	}

	return toDomainMovie(model), nil
}

func toDomainMovie(m MovieModel) movie.Movie {
	return movie.Movie{
		ID:        m.ID,
		Name:      m.Name,
		Date:      m.Date,
		Score:     m.Score,
		Genre:     m.Genre,
		Overview:  m.Overview,
		Crew:      m.Crew,
		OrigTitle: m.OrigTitle,
		Status:    m.Status,
		OrigLang:  m.OrigLang,
		Budget:    m.Budget,
		Revenue:   m.Revenue,
		Country:   m.Country,
	}
}
