package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/sitewide-search/internal/domain"
	"github.com/DjordjeVuckovic/sitewide-search/internal/storage"
	"github.com/DjordjeVuckovic/sitewide-search/pkg/pagination"
	"github.com/DjordjeVuckovic/sitewide-search/pkg/stringsutil"
	"github.com/labstack/echo/v4"
)

type SearchRouter struct {
	e       *echo.Echo
	service storage.SearchQueryService
}

func NewSearchRouter(e *echo.Echo, service storage.SearchQueryService) *SearchRouter {
	return &SearchRouter{
		e:       e,
		service: service,
	}
}

func (r *SearchRouter) Bind() {
	g := r.e.Group("/search")
	g.GET("/status", r.statusHandler)
	g.GET("/:collection/:language", r.searchHandler)
	g.GET("/:collection/:language/*", r.searchHandler)
}

// searchHandler godoc
// @Summary Sitewide search
// @Description Full-text search over a collection in one language. Results are ordered by relevance, then URL.
// @Tags search
// @Produce json
// @Param collection path string true "Collection name" Enums(cgov, doc)
// @Param language path string true "Language code" Enums(en, es)
// @Param term path string true "Search term, URL encoded"
// @Param from query int false "Offset of the first result" default(0)
// @Param size query int false "Number of results" default(10)
// @Param site query []string false "Site filter, repeatable" collectionFormat(multi)
// @Success 200 {object} domain.SearchResultPage
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /search/{collection}/{language}/{term} [get]
func (r *SearchRouter) searchHandler(c echo.Context) error {
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
		return c.JSON(http.StatusOK, domain.NewSearchResultPage(0, nil))
	}

	page := pagination.ParseOffsetRequest(c.QueryParam("from"), c.QueryParam("size"))
	if err := page.Validate(); err != nil {
		return err
	}

	sites := stringsutil.RemoveEmptyStrings(stringsutil.TrimAll(c.QueryParams()["site"]))
	if len(sites) == 0 {
		sites = []string{domain.DefaultSite}
	}

	results, err := r.service.Get(c.Request().Context(), collection, language, term, page.From, page.Size, sites)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, results)
}

// statusHandler godoc
// @Summary Search service status
// @Tags search
// @Produce plain
// @Success 200 {string} string "alive!"
// @Failure 500 {string} string "Service not healthy."
// @Router /search/status [get]
func (r *SearchRouter) statusHandler(c echo.Context) error {
	return statusResponse(c, r.service.Healthy(c.Request().Context()))
}
