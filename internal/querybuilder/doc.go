package querybuilder

import (
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// docEnglishQuery restricts hits to titled pages under the first site filter.
func docEnglishQuery(searchTerm string, siteFilters []string) *types.Query {
	return &types.Query{
		Bool: &types.BoolQuery{
			Filter: []types.Query{
				languageOrUntagged("en"),
			},
			Must: []types.Query{
				allOf(
					exists(fieldSearchTitle),
					prefix(fieldSearchURLRaw, firstSite(siteFilters)),
				),
				anyOf(
					matchAll(fieldContent, searchTerm, 2),
					match(fieldSearchTitle, searchTerm, boost(2)),
					match(fieldSearchURL, searchTerm, boost(3)),
					matchPhrase(fieldContent, searchTerm, 3),
					anyOf(match(fieldDescription, searchTerm, boost(descriptionBoost))),
				),
			},
			Should: []types.Query{
				term(fieldType, mimeHTML, boost(2)),
			},
		},
	}
}

func docSpanishQuery(searchTerm string, siteFilters []string) *types.Query {
	return &types.Query{
		Bool: &types.BoolQuery{
			Filter: []types.Query{
				term(fieldContentLanguage, "es", nil),
			},
			Must: []types.Query{
				allOf(
					exists(fieldSearchTitle),
					prefix(fieldSearchURLRaw, firstSite(siteFilters)),
				),
				anyOf(
					matchAll(fieldContentES, searchTerm, 1),
					match(fieldSearchTitleES, searchTerm, boost(1)),
					match(fieldSearchURLES, searchTerm, boost(1)),
					matchPhrase(fieldContentES, searchTerm, 1),
					anyOf(match(fieldDescriptionES, searchTerm, boost(descriptionBoost))),
				),
			},
			Should: []types.Query{
				term(fieldType, mimeHTML, boost(1)),
			},
		},
	}
}
