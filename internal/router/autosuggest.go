package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/sitewide-search/internal/apperr"
	"github.com/DjordjeVuckovic/sitewide-search/internal/storage"
	"github.com/DjordjeVuckovic/sitewide-search/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type AutosuggestRouter struct {
	e       *echo.Echo
	service storage.AutosuggestQueryService
}

func NewAutosuggestRouter(e *echo.Echo, service storage.AutosuggestQueryService) *AutosuggestRouter {
	return &AutosuggestRouter{
		e:       e,
		service: service,
	}
}

func (r *AutosuggestRouter) Bind() {
	g := r.e.Group("/autosuggest")
	g.GET("/status", r.statusHandler)
	g.GET("/:collection/:language", r.autosuggestHandler)
	g.GET("/:collection/:language/*", r.autosuggestHandler)
}

// autosuggestHandler godoc
// @Summary Search term suggestions
// @Description Suggested search terms for a partial term, heaviest first.
// @Tags autosuggest
// @Produce json
// @Param collection path string true "Collection name"
// @Param language path string true "Language code" Enums(en, es)
// @Param term path string true "Partial search term, URL encoded"
// @Param size query int false "Number of suggestions" default(10)
// @Success 200 {object} domain.SuggestionPage
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /autosuggest/{collection}/{language}/{term} [get]
func (r *AutosuggestRouter) autosuggestHandler(c echo.Context) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}

	language, err := languageParam(c)
	if err != nil {
		return err
	}

	term := termParam(c)
	if isBlank(term) {
		return apperr.NewValidation(MissingTermMessage)
	}

	page := pagination.ParseOffsetRequest("", c.QueryParam("size"))
	if err := page.Validate(); err != nil {
		return err
	}

	results, err := r.service.Get(c.Request().Context(), collection, language, term, page.Size)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, results)
}

// statusHandler godoc
// @Summary Autosuggest service status
// @Tags autosuggest
// @Produce plain
// @Success 200 {string} string "alive!"
// @Failure 500 {string} string "Service not healthy."
// @Router /autosuggest/status [get]
func (r *AutosuggestRouter) statusHandler(c echo.Context) error {
	return statusResponse(c, r.service.Healthy(c.Request().Context()))
}
