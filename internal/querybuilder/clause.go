package querybuilder

import (
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/operator"
)

// Field names of the sitewide index (Nutch-style flat metatag keys).
const (
	fieldContent         = "content"
	fieldContentES       = "content.es"
	fieldSearchTitle     = "searchtitle"
	fieldSearchTitleES   = "searchtitle.es"
	fieldSearchURL       = "searchurl"
	fieldSearchURLES     = "searchurl.es"
	fieldSearchURLRaw    = "searchurl.raw"
	fieldDescription     = "metatag.description"
	fieldDescriptionES   = "metatag.description.es"
	fieldContentLanguage = "metatag.content-language"
	fieldDCTermsType     = "metatag.dcterms.type"
	fieldType            = "type"
	fieldHost            = "host"
)

const (
	mimeHTML             = "text/html"
	dcTypeCancerInfoSumm = "pdqcancerinfosummary"
	dcTypeCancerTypeHome = "cgovcancertypehome"
	canonicalHost        = "www.cancer.gov"
	descriptionBoost     = 0.01
	contentTypeBoost     = 1.2
	cgovNegativeBoost    = 0.5
	pressReleasesPrefix  = "www.cancer.gov/news-events/press-releases/"
	lifelinesPrefix      = "www.cancer.gov/news-events/media-resources/multicultural/lifelines/"
	videoURLTerm         = "video"
)

var demotedYears = []types.FieldValue{"2012", "2011", "2010", "2013"}

func boost(v float32) *float32 {
	return &v
}

func term(field string, value string, weight *float32) types.Query {
	return types.Query{
		Term: map[string]types.TermQuery{
			field: {Value: value, Boost: weight},
		},
	}
}

func terms(field string, values []types.FieldValue) types.Query {
	return types.Query{
		Terms: &types.TermsQuery{
			TermsQuery: map[string]types.TermsQueryField{
				field: values,
			},
		},
	}
}

func match(field string, query string, weight *float32) types.Query {
	return types.Query{
		Match: map[string]types.MatchQuery{
			field: {Query: query, Boost: weight},
		},
	}
}

// matchAll requires every analyzed token of query to be present in field.
func matchAll(field string, query string, weight float32) types.Query {
	and := operator.And
	return types.Query{
		Match: map[string]types.MatchQuery{
			field: {Query: query, Operator: &and, Boost: boost(weight)},
		},
	}
}

func matchPhrase(field string, query string, weight float32) types.Query {
	return types.Query{
		MatchPhrase: map[string]types.MatchPhraseQuery{
			field: {Query: query, Boost: boost(weight)},
		},
	}
}

func exists(field string) types.Query {
	return types.Query{
		Exists: &types.ExistsQuery{Field: field},
	}
}

func prefix(field string, value string) types.Query {
	return types.Query{
		Prefix: map[string]types.PrefixQuery{
			field: {Value: value},
		},
	}
}

// anyOf matches when at least one clause matches.
func anyOf(clauses ...types.Query) types.Query {
	return types.Query{
		Bool: &types.BoolQuery{Should: clauses},
	}
}

// allOf matches when every clause matches.
func allOf(clauses ...types.Query) types.Query {
	return types.Query{
		Bool: &types.BoolQuery{Must: clauses},
	}
}

func not(clause types.Query) types.Query {
	return types.Query{
		Bool: &types.BoolQuery{MustNot: []types.Query{clause}},
	}
}

// languageOrUntagged accepts documents tagged with lang or carrying no
// language tag at all.
func languageOrUntagged(lang string) types.Query {
	return anyOf(
		term(fieldContentLanguage, lang, nil),
		not(exists(fieldContentLanguage)),
	)
}

// firstSite returns the site prefix the doc collection filters on.
// Only the first filter is honoured; an empty list yields the empty prefix,
// which matches every URL.
func firstSite(siteFilters []string) string {
	if len(siteFilters) == 0 {
		return ""
	}
	return siteFilters[0]
}
