package httpserver

import "theater/movie"

type ListMoviesRequest struct {
	Page    int `query:"page" json:"page" validate:"min=1"`
	PerPage int `query:"per_page" json:"per_page" validate:"min=1,max=20"`
}

func newListMoviesRequest() ListMoviesRequest {
	return ListMoviesRequest{
		Page:    movie.DefaultPage,
		PerPage: movie.DefaultPerPage,
	}
}

type GetMovieRequest struct {
	MovieID int64 `param:"movie_id" json:"movie_id"`
}
