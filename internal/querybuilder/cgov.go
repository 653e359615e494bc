package querybuilder

import (
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// cgovEnglishQuery demotes, rather than excludes, dated press releases,
// Lifelines pages and video pages. The negative clause groups as
// (years AND press-releases) OR lifelines OR video.
func cgovEnglishQuery(searchTerm string, _ []string) *types.Query {
	positive := types.Query{
		Bool: &types.BoolQuery{
			Must: []types.Query{
				languageOrUntagged("en"),
				anyOf(
					matchAll(fieldContent, searchTerm, 1),
					matchPhrase(fieldContent, searchTerm, 1),
					matchPhrase(fieldSearchTitle, searchTerm, 1),
					match(fieldSearchTitle, searchTerm, boost(1)),
					anyOf(
						match(fieldDescription, searchTerm, boost(descriptionBoost)),
						matchPhrase(fieldDescription, searchTerm, descriptionBoost),
					),
				),
			},
			Should: []types.Query{
				term(fieldType, mimeHTML, boost(4)),
				match(fieldDCTermsType, dcTypeCancerInfoSumm, boost(contentTypeBoost)),
				match(fieldDCTermsType, dcTypeCancerTypeHome, boost(contentTypeBoost)),
				anyOf(term(fieldHost, canonicalHost, boost(10))),
			},
		},
	}

	negative := anyOf(
		allOf(
			terms(fieldSearchURL, demotedYears),
			prefix(fieldSearchURLRaw, pressReleasesPrefix),
		),
		prefix(fieldSearchURLRaw, lifelinesPrefix),
		match(fieldSearchURL, videoURLTerm, nil),
	)

	return &types.Query{
		Boosting: &types.BoostingQuery{
			Positive:      positive,
			Negative:      negative,
			NegativeBoost: cgovNegativeBoost,
		},
	}
}

func cgovSpanishQuery(searchTerm string, _ []string) *types.Query {
	return &types.Query{
		Bool: &types.BoolQuery{
			Must: []types.Query{
				term(fieldContentLanguage, "es", nil),
				anyOf(
					matchAll(fieldContentES, searchTerm, 1),
					match(fieldSearchTitleES, searchTerm, boost(1)),
					match(fieldSearchURLES, searchTerm, boost(1)),
					anyOf(match(fieldDescriptionES, searchTerm, boost(descriptionBoost))),
				),
			},
			Should: []types.Query{
				term(fieldType, mimeHTML, boost(1)),
				match(fieldDCTermsType, dcTypeCancerInfoSumm, boost(contentTypeBoost)),
				match(fieldDCTermsType, dcTypeCancerTypeHome, boost(contentTypeBoost)),
				anyOf(term(fieldHost, canonicalHost, boost(1))),
			},
		},
	}
}
