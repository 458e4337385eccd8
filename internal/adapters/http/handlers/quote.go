package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/movie-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/movie-quotes/internal/app"
	"github.com/jsamuelsen/movie-quotes/internal/domain"
)

// QuoteHandler handles the quote endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /v1/quotes
//
// @Summary List quotes
// @Description Returns the stored quotes in identifier order, restricted to the offset/limit window
// @Tags quotes
// @Produce json
// @Param offset query int false "Items to skip"
// @Param limit query int false "Maximum items to return"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	p, ok := bindPagination(c)
	if !ok {
		return
	}

	quotes := h.service.ListQuotes(c.Request.Context(), p)
	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// RandomQuote handles GET /v1/random-quote
//
// @Summary Get a random quote
// @Description Picks a quote uniformly from the offset/limit window
// @Tags quotes
// @Produce json
// @Param offset query int false "Items to skip"
// @Param limit query int false "Maximum items to consider"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 "Empty window"
// @Router /v1/random-quote [get]
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	p, ok := bindPagination(c)
	if !ok {
		return
	}

	quote, err := h.service.RandomQuote(c.Request.Context(), p)
	if err != nil {
		respondPickError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// RandomQuoteByMovie handles GET /v1/quotes/:movieSlug/random-quote
//
// @Summary Get a random quote from a movie
// @Description Picks a quote uniformly among the quotes of one movie
// @Tags quotes
// @Produce json
// @Param movieSlug path string true "Movie slug"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown movie slug"
// @Router /v1/quotes/{movieSlug}/random-quote [get]
func (h *QuoteHandler) RandomQuoteByMovie(c *gin.Context) {
	quote, err := h.service.RandomQuoteByMovie(c.Request.Context(), c.Param("movieSlug"))
	if err != nil {
		respondPickError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// ListMovies handles GET /v1/movies
//
// @Summary List movies
// @Tags movies
// @Produce json
// @Success 200 {array} dto.MovieResponse
// @Router /v1/movies [get]
func (h *QuoteHandler) ListMovies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewMovieListResponse(h.service.Movies(c.Request.Context())))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes", h.ListQuotes)
	rg.GET("/quotes/:movieSlug/random-quote", h.RandomQuoteByMovie)
	rg.GET("/random-quote", h.RandomQuote)
	rg.GET("/movies", h.ListMovies)
}

func bindPagination(c *gin.Context) (domain.Pagination, bool) {
	var q dto.PaginationQuery

	err := dto.BindQueryAndValidate(c, &q)
	switch {
	case err == nil:
		return q.ToDomain(), true
	case dto.IsValidationError(err):
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
	case errors.Is(err, dto.ErrBinding):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"offset and limit must be integers",
		).WithTraceID(dto.GetTraceID(c)))
	default:
		dto.HandleError(c, err)
	}

	return domain.Pagination{}, false
}

// respondPickError answers an empty pick with a bare 404. Unknown movies and
// every other failure get the error envelope.
func respondPickError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		c.Status(http.StatusNotFound)
		return
	}

	dto.HandleError(c, err)
}
