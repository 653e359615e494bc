package router

import (
	"net/url"
	"strings"

	"github.com/DjordjeVuckovic/sitewide-search/internal/apperr"
	"github.com/DjordjeVuckovic/sitewide-search/internal/domain"
	"github.com/labstack/echo/v4"
)

// Messages returned to API callers.
const (
	MissingCollectionMessage = "You must supply a collection name"
	InvalidLanguageMessage   = "Not a valid language code."
	MissingTermMessage       = "You must supply a search term"
	NotHealthyMessage        = "Service not healthy."
	AliveMessage             = "alive!"
)

func collectionParam(c echo.Context) (domain.Collection, error) {
	collection := strings.TrimSpace(c.Param("collection"))
	if collection == "" {
		return "", apperr.NewValidation(MissingCollectionMessage)
	}
	return domain.Collection(collection), nil
}

func languageParam(c echo.Context) (domain.Language, error) {
	lang, err := domain.Language(c.Param("language")).Parse()
	if err != nil {
		return "", apperr.NewValidationWrap(InvalidLanguageMessage, err)
	}
	return lang, nil
}

// termParam returns the catch-all path segment decoded the way a query
// string is, so "+" becomes a space and percent escapes are resolved.
// A segment that does not decode is used verbatim.
func termParam(c echo.Context) string {
	raw := c.Param("*")
	term, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}
	return term
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
