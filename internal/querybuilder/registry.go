// Package querybuilder builds the Elasticsearch queries behind sitewide search.
//
// Each supported (collection, language) pair maps to exactly one Strategy with
// its own fixed field list and weights. Strategies are pure: the same term and
// site filters always produce the same query.
package querybuilder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/DjordjeVuckovic/sitewide-search/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

var ErrInvalidCombination = errors.New("invalid collection/language combination")

type Strategy int

const (
	CGovEnglish Strategy = iota + 1
	CGovSpanish
	DocEnglish
	DocSpanish
)

func (s Strategy) String() string {
	switch s {
	case CGovEnglish:
		return "cgov-en"
	case CGovSpanish:
		return "cgov-es"
	case DocEnglish:
		return "doc-en"
	case DocSpanish:
		return "doc-es"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

type Key struct {
	Collection domain.Collection
	Language   domain.Language
}

func (k Key) String() string {
	return string(k.Collection) + "/" + string(k.Language)
}

// Builder produces the query for one (collection, language) pair.
type Builder struct {
	strategy Strategy
	build    func(searchTerm string, siteFilters []string) *types.Query
}

func (b Builder) Strategy() Strategy {
	return b.strategy
}

// Query builds the search query. An empty siteFilters means no site restriction.
func (b Builder) Query(searchTerm string, siteFilters []string) *types.Query {
	return b.build(searchTerm, siteFilters)
}

// Registry is the fixed set of builders. It is read-only after NewRegistry
// and safe for concurrent use.
type Registry struct {
	builders map[Key]Builder
}

func NewRegistry() *Registry {
	return &Registry{
		builders: map[Key]Builder{
			{domain.CollectionCGov, domain.LanguageEnglish}: {CGovEnglish, cgovEnglishQuery},
			{domain.CollectionCGov, domain.LanguageSpanish}: {CGovSpanish, cgovSpanishQuery},
			{domain.CollectionDOC, domain.LanguageEnglish}:  {DocEnglish, docEnglishQuery},
			{domain.CollectionDOC, domain.LanguageSpanish}:  {DocSpanish, docSpanishQuery},
		},
	}
}

// Lookup returns the builder registered for the pair, or an error wrapping
// ErrInvalidCombination.
func (r *Registry) Lookup(collection domain.Collection, language domain.Language) (Builder, error) {
	key := Key{Collection: collection, Language: language}
	b, ok := r.builders[key]
	if !ok {
		return Builder{}, fmt.Errorf("%w: %s", ErrInvalidCombination, key)
	}
	return b, nil
}

// Keys lists the registered pairs in a stable order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.builders))
	for k := range r.builders {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
