package vocab

import "strings"

// RegionAssets bundles the cultural assets keyed by a scoring region.
// This is a deliberately coarser table than the macro-group taxonomy:
// it exists only to pick food/art/color assets for the gene map.
type RegionAssets struct {
	Key     string
	Aliases []string // substrings that resolve to this key, incl. the key itself
	Food    []string
	Art     []string
	Color   string
}

// DefaultRegionKey is the bucket for hometowns no scoring region claims.
const DefaultRegionKey = "default"

// regionAssets lists the mapped scoring regions in priority order,
// followed by the declared default variant. Aliases cover the capital
// cities so "西安市" still lands in the 陕西 bucket. Keeping the default
// as an explicit entry means an unmapped hometown is a visible case,
// not a silent map miss.
var regionAssets = []RegionAssets{
	{Key: "陕西", Aliases: []string{"陕西", "西安"}, Food: []string{"饺子", "甑糕"}, Art: []string{"剪纸", "皮影"}, Color: "秦风红"},
	{Key: "广东", Aliases: []string{"广东", "广州"}, Food: []string{"年糕", "盆菜"}, Art: []string{"醒狮", "花市"}, Color: "岭南金"},
	{Key: "北京", Aliases: []string{"北京"}, Food: []string{"烤鸭", "炸酱面"}, Art: []string{"京剧", "兔儿爷"}, Color: "京韵蓝"},
	{Key: DefaultRegionKey, Food: []string{"汤圆", "春卷"}, Art: []string{"春联", "灯笼"}, Color: "中国红"},
}

// LookupAssets resolves a hometown to its scoring region assets.
// The first entry with an alias contained in the hometown wins;
// anything unmatched, including an empty hometown, falls through to
// the default variant.
func LookupAssets(hometown string) RegionAssets {
	for _, ra := range regionAssets {
		for _, alias := range ra.Aliases {
			if strings.Contains(hometown, alias) {
				return ra
			}
		}
	}
	return regionAssets[len(regionAssets)-1]
}
