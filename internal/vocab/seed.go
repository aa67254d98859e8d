package vocab

import "github.com/heritageapp/heritage-server/internal/domain"

// SeedEntries is the hand-curated catalog seed. Ids are permanent: the
// synthesizer continues numbering after the highest seed id and never
// touches these entries.
var SeedEntries = []domain.CatalogEntry{
	{
		ID:               "1",
		Name:             "马年剪纸",
		Category:         "传统美术",
		Region:           "陕西",
		ShortDescription: "陕西剪纸传承人亲授“万马奔腾”",
		FullDescription:  "剪纸（蔚县剪纸、丰宁满族剪纸、中阳剪纸...），中国传统美术，国家级非物质文化遗产之一。马年剪纸常以“万马奔腾”为主题。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Chinese%20paper%20cutting%20art%20of%20horses%2C%20red%20paper%20texture&image_size=square_hd",
		Tags:             []string{"马年限定", "国家级非遗", "手工技艺"},
	},
	{
		ID:               "2",
		Name:             "唐三彩马",
		Category:         "传统技艺",
		Region:           "河南",
		ShortDescription: "洛阳唐三彩烧制技艺，重现盛唐风采",
		FullDescription:  "唐三彩烧制技艺，国家级非物质文化遗产之一。唐三彩马造型各异，釉色绚丽。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Tang%20Sancai%20horse%20sculpture%2C%20tricolor%20glazed%20pottery&image_size=square_hd",
		Tags:             []string{"陶瓷艺术", "盛唐文化", "色彩斑斓"},
	},
	{
		ID:               "3",
		Name:             "凤翔泥塑",
		Category:         "传统美术",
		Region:           "陕西",
		ShortDescription: "造型夸张，色彩艳丽的泥塑艺术",
		FullDescription:  "凤翔泥塑，国家级非物质文化遗产之一。其造型洗练夸张，装饰华美富繁，色彩艳丽喜庆，形态稚拙可爱。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Fengxiang%20clay%20sculpture%20of%20a%20horse%2C%20colorful%20folk%20art&image_size=square_hd",
		Tags:             []string{"泥塑", "民间艺术", "色彩鲜艳"},
	},
	{
		ID:               "4",
		Name:             "桃花坞木版年画",
		Category:         "传统美术",
		Region:           "江苏",
		ShortDescription: "姑苏版年画，东方古艺之花",
		FullDescription:  "桃花坞木版年画，国家级非物质文化遗产之一。其构图丰满，色彩鲜艳，装饰性强，富有浓郁的江南水乡特色。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Taohuawu%20woodblock%20new%20year%20print%2C%20traditional%20chinese%20art&image_size=square_hd",
		Tags:             []string{"年画", "江南文化", "版画"},
	},
	{
		ID:               "5",
		Name:             "自贡灯会",
		Category:         "民俗",
		Region:           "四川",
		ShortDescription: "天下第一灯，流光溢彩不夜城",
		FullDescription:  "自贡灯会，国家级非物质文化遗产之一。其气势壮观，规模宏大，精巧别致，迷离奇异。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Zigong%20Lantern%20Festival%2C%20huge%20colorful%20lanterns%20at%20night&image_size=square_hd",
		Tags:             []string{"灯会", "夜游", "非遗"},
	},
	{
		ID:               "6",
		Name:             "北京兔儿爷",
		Category:         "传统美术",
		Region:           "北京",
		ShortDescription: "老北京中秋节俗，吉祥如意",
		FullDescription:  "北京兔儿爷，国家级非物质文化遗产之一。它是北京特有的中秋节俗玩具，也是北京地区的吉祥物。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Beijing%20Rabbit%20God%20clay%20figurine%2C%20traditional%20toy&image_size=square_hd",
		Tags:             []string{"泥塑", "老北京", "民俗"},
	},
	{
		ID:               "7",
		Name:             "杨柳青木版年画",
		Category:         "传统美术",
		Region:           "天津",
		ShortDescription: "中国四大木版年画之首，色彩明艳",
		FullDescription:  "杨柳青木版年画继承了宋、元绘画的传统，吸收了明代木刻版画的形式，采用“半印半画”的工艺。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Yangliuqing%20woodblock%20print%2C%20chubby%20baby%20holding%20fish%2C%20traditional%20Chinese%20New%20Year%20art&image_size=square_hd",
		Tags:             []string{"年画", "春节", "民间艺术"},
	},
	{
		ID:               "8",
		Name:             "苏绣",
		Category:         "传统美术",
		Region:           "江苏",
		ShortDescription: "四大名绣之一，图案秀丽，针法活泼",
		FullDescription:  "苏绣是苏州地区刺绣产品的总称，其发源地在苏州吴县一带，现已遍衍无锡、常州等地。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Suzhou%20embroidery%20art%2C%20silk%20thread%2C%20cat%20or%20flower%20pattern%2C%20exquisite%20details&image_size=square_hd",
		Tags:             []string{"刺绣", "江南", "非遗"},
	},
	{
		ID:               "9",
		Name:             "皮影戏",
		Category:         "传统戏剧",
		Region:           "陕西",
		ShortDescription: "光影间的古老艺术，幕后操纵的传奇",
		FullDescription:  "皮影戏（华阴老腔），中国民间古老的传统艺术，老北京人叫做“驴皮影”。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Chinese%20shadow%20puppetry%2C%20traditional%20performance%20behind%20screen%2C%20colorful%20figures&image_size=square_hd",
		Tags:             []string{"戏剧", "光影", "民间故事"},
	},
	{
		ID:               "10",
		Name:             "秦淮灯会",
		Category:         "民俗",
		Region:           "江苏",
		ShortDescription: "金陵灯会，秦淮河畔的流光溢彩",
		FullDescription:  "秦淮灯会是流传于南京地区的民俗文化活动，又称“金陵灯会”，主要在春节至元宵节期间举行。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Qinhuai%20Lantern%20Festival%20in%20Nanjing%2C%20colorful%20lanterns%20reflecting%20on%20river%2C%20night%20scene&image_size=square_hd",
		Tags:             []string{"灯会", "元宵", "夜游"},
	},
	{
		ID:               "11",
		Name:             "舞狮",
		Category:         "传统体育、游艺与杂技",
		Region:           "广东",
		ShortDescription: "醒狮贺岁，锣鼓喧天，步步高升",
		FullDescription:  "舞狮是中国优秀的民间艺术，每逢佳节或集会庆典，民间都以舞狮来助兴。广东醒狮被列入第一批国家级非物质文化遗产名录。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Chinese%20Lion%20Dance%20performance%2C%20festive%20atmosphere%2C%20red%20and%20gold%20colors&image_size=square_hd",
		Tags:             []string{"醒狮", "春节", "吉祥"},
	},
	{
		ID:               "12",
		Name:             "景德镇手工制瓷",
		Category:         "传统技艺",
		Region:           "江西",
		ShortDescription: "白如玉，明如镜，薄如纸，声如磬",
		FullDescription:  "景德镇手工制瓷技艺，国家级非物质文化遗产之一。其青花瓷、玲珑瓷、粉彩瓷、颜色釉瓷合称景德镇四大传统名瓷。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Jingdezhen%20porcelain%20making%2C%20blue%20and%20white%20ceramics%2C%20traditional%20craftsmanship&image_size=square_hd",
		Tags:             []string{"陶瓷", "工匠精神", "China"},
	},
	{
		ID:               "13",
		Name:             "南京云锦",
		Category:         "传统技艺",
		Region:           "江苏",
		ShortDescription: "寸锦寸金，皇家御用，锦中之圣",
		FullDescription:  "南京云锦木机妆花手工织造技艺，国家级非物质文化遗产。云锦用料考究，织造精细，图案精美，格调高雅。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Nanjing%20Yunjin%20brocade%2C%20intricate%20silk%20weaving%2C%20gold%20thread%2C%20dragon%20pattern&image_size=square_hd",
		Tags:             []string{"织造", "皇家", "丝绸"},
	},
	{
		ID:               "14",
		Name:             "潍坊风筝",
		Category:         "传统技艺",
		Region:           "山东",
		ShortDescription: "纸鸢飞天，寄托希望，春日盛景",
		FullDescription:  "潍坊风筝制作技艺，国家级非物质文化遗产。潍坊被各国推崇为“世界风筝之都”。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Weifang%20traditional%20kites%20flying%20in%20sky%2C%20dragon%20centipede%20kite%2C%20colorful&image_size=square_hd",
		Tags:             []string{"风筝", "踏青", "手工艺"},
	},
	{
		ID:               "15",
		Name:             "苗族银饰",
		Category:         "传统技艺",
		Region:           "贵州",
		ShortDescription: "银装素裹，精雕细琢，民族瑰宝",
		FullDescription:  "苗族银饰锻制技艺，国家级非物质文化遗产。苗族银饰以大、重、多为美，工艺复杂，纹样丰富。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Miao%20ethnic%20silver%20headdress%20and%20jewelry%2C%20intricate%20silverwork%2C%20traditional%20attire&image_size=square_hd",
		Tags:             []string{"银饰", "民族风", "锻造"},
	},
	{
		ID:               "16",
		Name:             "内画鼻烟壶",
		Category:         "传统美术",
		Region:           "河北",
		ShortDescription: "鬼斧神工，寸幅之地，气象万千",
		FullDescription:  "衡水内画，国家级非物质文化遗产。在小小的鼻烟壶内壁上进行绘画，需要高超的技艺和定力。",
		ImageURL:         "https://coresg-normal.trae.ai/api/ide/v1/text_to_image?prompt=Chinese%20snuff%20bottle%20inside%20painting%2C%20glass%20bottle%20art%2C%20macro%20shot&image_size=square_hd",
		Tags:             []string{"内画", "微缩艺术", "收藏"},
	},
}
