// Package vocab holds the immutable reference data of the heritage catalog:
// region and category enumerations, the synthesis word pools, the region
// macro-group taxonomy, the scoring engine's regional asset table, and the
// archetype cards. Nothing in this package is mutated at runtime.
package vocab

// AllSentinel is the filter value that disables a category or region filter.
const AllSentinel = "全部"

// Regions enumerates the 31 administrative regions entries are drawn from.
var Regions = []string{
	"北京", "天津", "河北", "山西", "内蒙古",
	"辽宁", "吉林", "黑龙江",
	"上海", "江苏", "浙江", "安徽", "福建", "江西", "山东",
	"河南", "湖北", "湖南",
	"广东", "广西", "海南",
	"重庆", "四川", "贵州", "云南", "西藏",
	"陕西", "甘肃", "青海", "宁夏", "新疆",
}

// Categories enumerates the 10 traditional-practice categories.
var Categories = []string{
	"民间文学", "传统音乐", "传统舞蹈", "传统戏剧", "曲艺",
	"传统体育、游艺与杂技", "传统美术", "传统技艺", "传统医药", "民俗",
}

// Adjectives is the stylistic qualifier pool used to compose entry names.
var Adjectives = []string{
	"宫廷", "民间", "皇家", "古法", "手工", "金丝",
	"彩绘", "镂空", "写意", "祈福", "盛世", "祥瑞",
}

// Nouns is the craft-form pool used to compose entry names.
var Nouns = []string{
	"剪纸", "刺绣", "陶艺", "面塑", "灯彩", "年画", "皮影",
	"木雕", "砖雕", "蜡染", "银饰", "漆器", "竹编", "风筝",
}

// TagPool is the free tag pool; synthesized entries draw two tags from it,
// duplicates allowed.
var TagPool = []string{
	"非遗", "手工", "传统", "文化", "艺术", "春节", "匠心", "国潮", "历史", "民俗",
}

// nounPhotoIDs maps each craft noun to curated Unsplash photo ids.
// The ids are stable and point to high-quality cultural photos.
var nounPhotoIDs = map[string][]string{
	"剪纸": {"1548690324-4299e19d4431", "1613426720309-c704f5e7143e", "1580126569429-1954848d5113"},
	"刺绣": {"1610052737568-7c8524317136", "1585848464687-0d32c448f804", "1589203832113-731557022a57"},
	"陶艺": {"1565193566173-7a0ee3227432", "1610701596707-62d022c42b5c", "1581337220022-794014d59f2a"},
	"面塑": {"1515264359404-58a36c61f224", "1582234033100-8438676d05f3", "1515585093558-4547211105c3"},
	"灯彩": {"1518018788975-f0941295d9c6", "1486745585817-49d63c52a061", "1548818503-455648873091"},
	"年画": {"1515286226169-2f22c668b92d", "1517506648782-b3531b79f874", "1549556133-875c742c3005"},
	"皮影": {"1535083252457-6080fe29be45", "1628004518706-e0e64f89d97a", "1618237626243-22839d37dc62"},
	"木雕": {"1603986872659-3226a2754c0e", "1615715757401-19ca296f8c85", "1587393855524-087f83d95bc9"},
	"砖雕": {"1597818817366-0708502f61a0", "1610086918664-984487693952", "1624446460695-181514757134"},
	"蜡染": {"1583307525381-8b024476906a", "1628178652391-7f28743a6d97", "1526849479383-207d72c8429f"},
	"银饰": {"1612450030588-4660d5b62b14", "1576487238647-38e24483b8b6", "1605218427360-4050764d708e"},
	"漆器": {"1606822368297-f50772275215", "1583095117917-205cb291665c", "1582126233261-754641e78044"},
	"竹编": {"1596135811053-d2d1445d430a", "1588614486844-486182c4f826", "1589365561081-3444458f385c"},
	"风筝": {"1578357078588-d46059d481bc", "1533488765986-dfa2a9939acd", "1595166708605-728b78809c95"},
}

// culturePhotoIDs is the generic fallback set for nouns without a mapping.
var culturePhotoIDs = []string{
	"1515093112284-52264950bbfd", "1528164344705-4754268709dd", "1515264359404-58a36c61f224",
}

// PhotoIDs returns the Unsplash photo id set for a noun, falling back to
// the generic culture set for unmapped nouns.
func PhotoIDs(noun string) []string {
	if ids, ok := nounPhotoIDs[noun]; ok {
		return ids
	}
	return culturePhotoIDs
}

// PhotoURL builds the image URI for an Unsplash photo id.
func PhotoURL(photoID string) string {
	return "https://images.unsplash.com/photo-" + photoID + "?auto=format&fit=crop&w=400&h=400&q=80"
}
