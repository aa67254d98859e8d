package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heritageapp/heritage-server/internal/domain"
	"github.com/heritageapp/heritage-server/internal/search"
)

func setupIndex(t *testing.T) *search.Index {
	t.Helper()

	idx, err := search.NewIndex(search.Options{DataPath: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	entries := []domain.CatalogEntry{
		{ID: "1", Name: "马年剪纸", Category: "传统美术", Region: "陕西", ShortDescription: "陕西剪纸传承人亲授", FullDescription: "剪纸，中国传统美术。", Tags: []string{"非遗", "手工"}},
		{ID: "2", Name: "苏绣", Category: "传统美术", Region: "江苏", ShortDescription: "四大名绣之一", FullDescription: "苏绣是苏州地区刺绣产品的总称。", Tags: []string{"刺绣"}},
		{ID: "3", Name: "舞狮", Category: "传统体育、游艺与杂技", Region: "广东", ShortDescription: "醒狮贺岁", FullDescription: "舞狮是中国优秀的民间艺术。", Tags: []string{"醒狮"}},
		{ID: "4", Name: "皮影戏", Category: "传统戏剧", Region: "陕西", ShortDescription: "光影间的古老艺术", FullDescription: "中国民间古老的传统艺术。", Tags: []string{"戏剧"}},
	}

	docs := make([]*search.HeritageDocument, 0, len(entries))
	for i := range entries {
		docs = append(docs, search.EntryToDocument(&entries[i]))
	}
	require.NoError(t, idx.IndexDocuments(docs))
	return idx
}

func TestSearchByName(t *testing.T) {
	idx := setupIndex(t)

	res, err := idx.Search(context.Background(), search.Params{Query: "剪纸", Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, res.Hits)
	assert.Equal(t, "1", res.Hits[0].ID)
	assert.Equal(t, "马年剪纸", res.Hits[0].Name)
}

func TestSearchNormalizesQuery(t *testing.T) {
	idx := setupIndex(t)

	// Ideographic spaces from IME input are trimmed before matching.
	res, err := idx.Search(context.Background(), search.Params{Query: "　剪纸　", Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, res.Hits)
	assert.Equal(t, "1", res.Hits[0].ID)
}

func TestSearchByDescription(t *testing.T) {
	idx := setupIndex(t)

	res, err := idx.Search(context.Background(), search.Params{Query: "苏州", Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, res.Hits)
	assert.Equal(t, "2", res.Hits[0].ID)
}

func TestSearchCategoryFilter(t *testing.T) {
	idx := setupIndex(t)

	res, err := idx.Search(context.Background(), search.Params{Category: "传统美术", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Total)
	for _, h := range res.Hits {
		assert.Equal(t, "传统美术", h.Category)
	}
}

func TestSearchRegionGroupFilter(t *testing.T) {
	idx := setupIndex(t)

	res, err := idx.Search(context.Background(), search.Params{RegionGroup: "西北", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Total)
	for _, h := range res.Hits {
		assert.Equal(t, "西北", h.RegionGroup)
	}
}

func TestSearchConjunctiveFilters(t *testing.T) {
	idx := setupIndex(t)

	res, err := idx.Search(context.Background(), search.Params{
		Query:       "艺术",
		RegionGroup: "西北",
		Limit:       10,
	})
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "4", res.Hits[0].ID)
}

func TestSearchMatchAll(t *testing.T) {
	idx := setupIndex(t)

	res, err := idx.Search(context.Background(), search.Params{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), res.Total)
}

func TestSearchFacets(t *testing.T) {
	idx := setupIndex(t)

	res, err := idx.Search(context.Background(), search.Params{Limit: 10, IncludeFacets: true})
	require.NoError(t, err)
	require.NotNil(t, res.Facets)

	categories := make(map[string]int)
	for _, f := range res.Facets.Categories {
		categories[f.Value] = f.Count
	}
	assert.Equal(t, 2, categories["传统美术"])
	assert.Equal(t, 1, categories["传统戏剧"])

	groups := make(map[string]int)
	for _, f := range res.Facets.RegionGroups {
		groups[f.Value] = f.Count
	}
	assert.Equal(t, 2, groups["西北"])
}

func TestSearchHighlight(t *testing.T) {
	idx := setupIndex(t)

	res, err := idx.Search(context.Background(), search.Params{Query: "剪纸", Limit: 10, Highlight: true})
	require.NoError(t, err)
	require.NotEmpty(t, res.Hits)
	assert.NotEmpty(t, res.Hits[0].Highlights)
}

func TestDocumentCount(t *testing.T) {
	idx := setupIndex(t)

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)
}

func TestRebuildEmptiesIndex(t *testing.T) {
	idx := setupIndex(t)

	require.NoError(t, idx.Rebuild())
	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}
