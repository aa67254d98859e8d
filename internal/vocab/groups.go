package vocab

import "strings"

// OtherGroup is the sentinel returned for regions no macro-group claims.
const OtherGroup = "其他"

// RegionGroup is one macro-group of the region taxonomy.
type RegionGroup struct {
	Name    string
	Members []string
}

// RegionGroups is the fixed 7-group taxonomy over the region enumeration,
// in canonical declaration order. Resolution walks this order and returns
// the first group with a member contained in the queried region string, so
// earlier groups win when suffixed names ("陕西省", "上海市") are ambiguous.
var RegionGroups = []RegionGroup{
	{Name: "华北", Members: []string{"北京", "天津", "河北", "山西", "内蒙古"}},
	{Name: "东北", Members: []string{"辽宁", "吉林", "黑龙江"}},
	{Name: "华东", Members: []string{"上海", "江苏", "浙江", "安徽", "福建", "江西", "山东"}},
	{Name: "华中", Members: []string{"河南", "湖北", "湖南"}},
	{Name: "华南", Members: []string{"广东", "广西", "海南"}},
	{Name: "西南", Members: []string{"重庆", "四川", "贵州", "云南", "西藏"}},
	{Name: "西北", Members: []string{"陕西", "甘肃", "青海", "宁夏", "新疆"}},
}

// GroupNames returns the taxonomy's group names in canonical order.
func GroupNames() []string {
	names := make([]string, 0, len(RegionGroups))
	for _, g := range RegionGroups {
		names = append(names, g.Name)
	}
	return names
}

// ResolveGroup maps a region string to its macro-group. Member names are
// matched as substrings, not exact matches, so administrative suffixes
// still resolve. Total: unmatched regions land in OtherGroup.
func ResolveGroup(region string) string {
	for _, g := range RegionGroups {
		for _, member := range g.Members {
			if strings.Contains(region, member) {
				return g.Name
			}
		}
	}
	return OtherGroup
}
