package vocab

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveGroup(t *testing.T) {
	tests := []struct {
		name   string
		region string
		want   string
	}{
		{"exact member", "陕西", "西北"},
		{"administrative suffix", "陕西省", "西北"},
		{"municipality suffix", "上海市", "华东"},
		{"north china", "内蒙古", "华北"},
		{"south china", "海南", "华南"},
		{"unknown region", "火星", OtherGroup},
		{"empty string", "", OtherGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveGroup(tt.region))
		})
	}
}

func TestResolveGroupCoversAllRegions(t *testing.T) {
	// Every declared region must land in a named group, never the sentinel.
	for _, region := range Regions {
		group := ResolveGroup(region)
		assert.NotEqual(t, OtherGroup, group, "region %s fell through to the sentinel", region)
	}
}

func TestGroupNames(t *testing.T) {
	names := GroupNames()
	require.Len(t, names, len(RegionGroups))
	assert.Equal(t, "华北", names[0])
	assert.Equal(t, "西北", names[len(names)-1])
	assert.NotContains(t, names, OtherGroup)
}

func TestLookupAssets(t *testing.T) {
	tests := []struct {
		name     string
		hometown string
		wantKey  string
	}{
		{"shaanxi capital", "西安市", "陕西"},
		{"shaanxi province", "陕西省西安市", "陕西"},
		{"guangdong", "广东省广州市", "广东"},
		{"guangdong capital", "广州", "广东"},
		{"beijing", "北京", "北京"},
		{"unmapped hometown", "上海", DefaultRegionKey},
		{"empty hometown", "", DefaultRegionKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupAssets(tt.hometown)
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Len(t, got.Food, 2)
			assert.Len(t, got.Art, 2)
			assert.NotEmpty(t, got.Color)
		})
	}
}

func TestPhotoIDs(t *testing.T) {
	for _, noun := range Nouns {
		ids := PhotoIDs(noun)
		require.Len(t, ids, 3, "noun %s", noun)
	}

	fallback := PhotoIDs("不存在的名词")
	assert.Equal(t, culturePhotoIDs, fallback)
}

func TestPhotoURL(t *testing.T) {
	url := PhotoURL("1548690324-4299e19d4431")
	assert.Equal(t, "https://images.unsplash.com/photo-1548690324-4299e19d4431?auto=format&fit=crop&w=400&h=400&q=80", url)
}

func TestSeedEntries(t *testing.T) {
	require.Len(t, SeedEntries, 16)

	seen := make(map[string]bool)
	for i, e := range SeedEntries {
		assert.Equal(t, strconv.Itoa(i+1), e.ID)
		assert.False(t, seen[e.ID], "duplicate seed id %s", e.ID)
		seen[e.ID] = true

		assert.Contains(t, Categories, e.Category)
		assert.Contains(t, Regions, e.Region)
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.ShortDescription)
		assert.NotEmpty(t, e.ImageURL)
		assert.NotEmpty(t, e.Tags)
	}
}

func TestArchetypeByID(t *testing.T) {
	require.Len(t, ArchetypeCards, 7)

	for _, c := range ArchetypeCards {
		got, ok := ArchetypeByID(c.ID)
		require.True(t, ok)
		assert.Equal(t, c.Title, got.Title)
		assert.Len(t, got.Steps, 4)
		assert.Len(t, got.Traits, 3)
	}

	_, ok := ArchetypeByID("missing")
	assert.False(t, ok)
}
