package router

import (
	"context"

	"github.com/DjordjeVuckovic/sitewide-search/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockSearchService struct {
	mock.Mock
}

func (m *mockSearchService) Get(ctx context.Context, collection domain.Collection, language domain.Language, term string, from, size int, siteFilters []string) (*domain.SearchResultPage, error) {
	args := m.Called(ctx, collection, language, term, from, size, siteFilters)
	page, _ := args.Get(0).(*domain.SearchResultPage)
	return page, args.Error(1)
}

func (m *mockSearchService) Healthy(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

type mockAutosuggestService struct {
	mock.Mock
}

func (m *mockAutosuggestService) Get(ctx context.Context, collection domain.Collection, language domain.Language, term string, size int) (*domain.SuggestionPage, error) {
	args := m.Called(ctx, collection, language, term, size)
	page, _ := args.Get(0).(*domain.SuggestionPage)
	return page, args.Error(1)
}

func (m *mockAutosuggestService) Healthy(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}
