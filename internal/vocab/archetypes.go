package vocab

import "github.com/heritageapp/heritage-server/internal/domain"

// ArchetypeCards is the fixed deck of personalization cards. Order and
// ids are stable; a user's assignment stores only the card id.
var ArchetypeCards = []domain.ArchetypeCard{
	{
		ID:          "gold",
		Title:       "金马纳福",
		Keyword:     "财运",
		Traits:      []string{"富贵", "辉煌", "大气"},
		Description: "您的年味基因如同熠熠生辉的金马，象征着富贵与繁荣。新的一年，您将如金马般闪耀，财运亨通，福气满满。",
		Blessing:    "金马贺岁，财源广进，福气东来！",
		Pattern:     "🪙",
		Steps: []domain.CraftStep{
			{Title: "掐丝轮廓", Description: "用金银细丝在胎体上勾勒出马的矫健轮廓。", Icon: "🧵"},
			{Title: "点蓝填色", Description: "在金丝框内仔细填入各色矿物釉料。", Icon: "🎨"},
			{Title: "烧蓝固色", Description: "入窑高温烧制，使釉料熔化固定，流光溢彩。", Icon: "🔥"},
			{Title: "镀金修饰", Description: "最后打磨镀金，让金马更加璀璨夺目。", Icon: "✨"},
		},
	},
	{
		ID:          "gallop",
		Title:       "万马奔腾",
		Keyword:     "事业",
		Traits:      []string{"进取", "速度", "力量"},
		Description: "您的基因中流淌着奔腾不息的血液。您像一匹千里马，永远充满激情与动力。新的一年，事业将突飞猛进，势不可挡。",
		Blessing:    "马到成功，前程似锦，步步高升！",
		Pattern:     "🔥",
		Steps: []domain.CraftStep{
			{Title: "研墨备纸", Description: "研磨好浓淡适宜的墨汁，铺开上好的宣纸。", Icon: "🖌️"},
			{Title: "骨法用笔", Description: "提笔挥毫，用刚劲的线条勾勒马的骨骼与肌肉。", Icon: "🐎"},
			{Title: "泼墨写意", Description: "运用泼墨技法，渲染出马鬃飞扬的速度感。", Icon: "🌊"},
			{Title: "画龙点睛", Description: "最后点出马眼，赋予其奔腾的灵魂与神采。", Icon: "👀"},
		},
	},
	{
		ID:          "papercut",
		Title:       "剪纸传情",
		Keyword:     "匠心",
		Traits:      []string{"细腻", "传统", "巧思"},
		Description: "您的年味基因中蕴含着剪纸艺术的细腻与巧思。您善于发现生活中的美好，并能用双手创造奇迹。生活将如剪纸般精致多彩。",
		Blessing:    "岁岁平安，心灵手巧，吉祥如意！",
		Pattern:     "✂️",
		Steps: []domain.CraftStep{
			{Title: "折叠红纸", Description: "取红纸一张，巧妙折叠，为对称纹样做准备。", Icon: "📄"},
			{Title: "描绘纹样", Description: "在纸上细致描绘出马与吉祥花卉的图案。", Icon: "✏️"},
			{Title: "千刻万剪", Description: "运刀如飞，先剪细部再剪轮廓，去繁留简。", Icon: "✂️"},
			{Title: "揭裱成画", Description: "小心展开，一幅栩栩如生的剪纸马跃然纸上。", Icon: "🖼️"},
		},
	},
	{
		ID:          "lantern",
		Title:       "灯彩映辉",
		Keyword:     "团圆",
		Traits:      []string{"温暖", "明亮", "温馨"},
		Description: "您的基因像温暖的灯彩，照亮了归家的路。您重视家庭与团圆，是家人心中最温暖的依靠。新的一年，生活将温暖明亮。",
		Blessing:    "阖家团圆，灯火可亲，幸福安康！",
		Pattern:     "🏮",
		Steps: []domain.CraftStep{
			{Title: "扎制骨架", Description: "用竹篾扎出马灯的立体骨架，定型稳固。", Icon: "🎋"},
			{Title: "糊纸裱绢", Description: "将彩纸或丝绢细心裱糊在骨架之上。", Icon: "🧴"},
			{Title: "彩绘装饰", Description: "在灯面上绘制吉祥图案，并装饰流苏。", Icon: "🎨"},
			{Title: "燃灯祈福", Description: "放入光源，点亮花灯，传递温暖与祝福。", Icon: "💡"},
		},
	},
	{
		ID:          "clay",
		Title:       "泥塑童趣",
		Keyword:     "纯真",
		Traits:      []string{"朴实", "快乐", "童心"},
		Description: "您的年味基因保留了最纯真的快乐。像泥塑一样朴实无华却充满生机。保持这份童心，新的一年将充满简单的快乐与惊喜。",
		Blessing:    "童心未泯，快乐无忧，岁岁欢喜！",
		Pattern:     "🧸",
		Steps: []domain.CraftStep{
			{Title: "捶打熟泥", Description: "反复捶打泥土，使其质地细腻且富有韧性。", Icon: "🔨"},
			{Title: "捏塑成型", Description: "运用搓、揉、捏等手法，塑造出马的憨态。", Icon: "👐"},
			{Title: "细致刻画", Description: "用竹刀刻画出马鬃、马鞍等细节纹理。", Icon: "🔪"},
			{Title: "彩绘开相", Description: "三分塑七分彩，上色后泥马瞬间活灵活现。", Icon: "🖌️"},
		},
	},
	{
		ID:          "embroidery",
		Title:       "锦绣前程",
		Keyword:     "精致",
		Traits:      []string{"华丽", "耐心", "优雅"},
		Description: "您的基因如苏绣般精致优雅。您对生活有高品质的追求，耐心耕耘必将收获华丽的成果。前程将如锦绣般绚丽多彩。",
		Blessing:    "锦上添花，生活美满，优雅一生！",
		Pattern:     "🧵",
		Steps: []domain.CraftStep{
			{Title: "选稿描样", Description: "选定骏马图稿，将其线条精准描绘在绣布上。", Icon: "📐"},
			{Title: "擘丝配色", Description: "将丝线劈成极细的丝缕，配好丰富的色阶。", Icon: "🧵"},
			{Title: "运针施绣", Description: "运用平绣、乱针绣等技法，一针一线绣出神韵。", Icon: "🪡"},
			{Title: "装裱珍藏", Description: "整理绣面，装裱成框，成为传世的锦绣艺术。", Icon: "🖼️"},
		},
	},
	{
		ID:          "shadow",
		Title:       "皮影戏梦",
		Keyword:     "传承",
		Traits:      []string{"故事", "光影", "历史"},
		Description: "您的基因中刻写着古老的故事。您是文化的传承者，在光影变幻中看透世事。新的一年，您将书写属于自己的精彩传奇。",
		Blessing:    "好戏连台，精彩不断，传奇人生！",
		Pattern:     "🎭",
		Steps: []domain.CraftStep{
			{Title: "选皮制皮", Description: "选用上等牛皮，经刮、磨、洗，制成半透明皮板。", Icon: "🐂"},
			{Title: "画稿雕刻", Description: "描绘马的分解图样，用刻刀精雕细琢出纹饰。", Icon: "🔪"},
			{Title: "敷彩发汗", Description: "给皮影上色，并高温发汗使颜色渗入皮内。", Icon: "🎨"},
			{Title: "缀结操纵", Description: "将各部位用线缀连，装上操纵杆，影马便能起舞。", Icon: "🎎"},
		},
	},
}

// ArchetypeByID looks up a card by id. The second return reports whether
// the id is part of the deck.
func ArchetypeByID(id string) (domain.ArchetypeCard, bool) {
	for _, c := range ArchetypeCards {
		if c.ID == id {
			return c, true
		}
	}
	return domain.ArchetypeCard{}, false
}
