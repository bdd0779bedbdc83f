package httpserver

import (
	"fmt"
	"net/http"

	"theater/errs"
	"theater/movie"

	"github.com/labstack/echo/v4"
)

// paramBinder reads only the parameter source each route declares; GET bodies are ignored.
var paramBinder = &echo.DefaultBinder{}

type MovieListResponse struct {
	Movies     []movie.Movie `json:"movies"`
	PrevPage   *string       `json:"prev_page"`
	NextPage   *string       `json:"next_page"`
	TotalPages int           `json:"total_pages"`
	TotalItems int64         `json:"total_items"`
}

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/movies/", s.handleListMovies)
	g.GET("/movies", s.handleListMovies)
	g.GET("/movies/:movie_id/", s.handleGetMovie)
	g.GET("/movies/:movie_id", s.handleGetMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Paginated list of movies ordered by id
// @Tags theater
// @Produce json
// @Param page query int false "Page number (>= 1), default 1"
// @Param per_page query int false "Page size (1-20), default 10"
// @Success 200 {object} MovieListResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /api/v1/theater/movies/ [get]
func (s *Server) handleListMovies(c echo.Context) error {
	req := newListMoviesRequest()
	if err := paramBinder.BindQueryParams(c, &req); err != nil {
		return errs.Errorf(errs.EINVALID, "page and per_page must be integers")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	page, err := s.MovieService.ListMovies(c.Request().Context(), req.Page, req.PerPage)
	if err != nil {
		return err
	}

	resp := MovieListResponse{
		Movies:     page.Movies,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
	if page.HasPrev() {
		link := s.pageLink(page.Page-1, page.PerPage)
		resp.PrevPage = &link
	}
	if page.HasNext() {
		link := s.pageLink(page.Page+1, page.PerPage)
		resp.NextPage = &link
	}

	return c.JSON(http.StatusOK, resp)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Single movie by id
// @Tags theater
// @Produce json
// @Param movie_id path int true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /api/v1/theater/movies/{movie_id}/ [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	var req GetMovieRequest
	if err := paramBinder.BindPathParams(c, &req); err != nil {
		return errs.Errorf(errs.EINVALID, "movie_id must be an integer")
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), req.MovieID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, m)
}

func (s *Server) pageLink(page, perPage int) string {
	return fmt.Sprintf("%s/theater/movies/?page=%d&per_page=%d", s.APIPrefix, page, perPage)
}
