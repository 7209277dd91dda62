package catalog

// SeedDish is one entry of the menu inserted into an empty menuItems collection.
type SeedDish struct {
	Name       string
	Price      float64
	CategoryID string
	Img        string
	Desc       string
}

const (
	imgStirfry  = "https://images.unsplash.com/photo-1624386971932-d193f443a6d4?w=200&h=200&fit=crop"
	imgBeef     = "https://images.unsplash.com/photo-1541544741938-0af808871cc0?w=200&h=200&fit=crop"
	imgGreens   = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=200&h=200&fit=crop"
	imgNoodle   = "https://images.unsplash.com/photo-1612929633738-8fe44f7ec841?w=200&h=200&fit=crop"
	imgSkewer   = "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=200&h=200&fit=crop"
	imgSnack    = "https://images.unsplash.com/photo-1563245372-f21724e3856d?w=200&h=200&fit=crop"
	imgSoyMilk  = "https://images.unsplash.com/photo-1613478223719-2ab802602423?w=200&h=200&fit=crop"
	imgLemonTea = "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?w=200&h=200&fit=crop"
)

var seedDishes = []SeedDish{
	{Name: "辣椒炒肉", Price: 38, CategoryID: "stirfry", Img: imgStirfry, Desc: "湘菜灵魂，螺丝椒炒土猪肉"},
	{Name: "剁椒鱼头", Price: 68, CategoryID: "stirfry", Img: imgStirfry, Desc: "鲜辣爽口，鱼肉嫩滑"},
	{Name: "小炒黄牛肉", Price: 48, CategoryID: "stirfry", Img: imgBeef, Desc: "野山椒爆炒，下饭神器"},
	{Name: "大碗花菜", Price: 26, CategoryID: "stirfry", Img: imgGreens, Desc: "有机花菜，五花肉煸香"},

	{Name: "长沙肉丝粉", Price: 16, CategoryID: "noodle", Img: imgNoodle, Desc: "骨汤打底，手工宽粉"},
	{Name: "酸豆角肉末粉", Price: 18, CategoryID: "noodle", Img: imgNoodle, Desc: "酸爽开胃，满满肉末"},

	{Name: "麻辣牛肉火锅", Price: 128, CategoryID: "hotpot", Img: imgBeef, Desc: "牛骨慢炖，鲜切吊龙"},
	{Name: "干锅肥肠", Price: 58, CategoryID: "hotpot", Img: imgBeef, Desc: "处理干净，香辣Q弹"},

	{Name: "烤羊肉串(5串)", Price: 25, CategoryID: "bbq", Img: imgSkewer, Desc: "孜然飘香，肥瘦相间"},
	{Name: "烤牛油(10串)", Price: 20, CategoryID: "bbq", Img: imgSkewer, Desc: "奶香十足，一口爆油"},

	{Name: "长沙臭豆腐", Price: 15, CategoryID: "snack", Img: imgSnack, Desc: "闻着臭吃着香，外酥里嫩"},
	{Name: "糖油粑粑", Price: 12, CategoryID: "snack", Img: imgSnack, Desc: "糯叽叽，甜而不腻"},

	{Name: "冰镇豆浆", Price: 6, CategoryID: "drink", Img: imgSoyMilk, Desc: "现磨豆浆，解辣首选"},
	{Name: "大桶柠檬茶", Price: 18, CategoryID: "drink", Img: imgLemonTea, Desc: "暴打柠檬，清爽解腻"},
}

// SeedDishes returns a copy of the initial menu.
func SeedDishes() []SeedDish {
	out := make([]SeedDish, len(seedDishes))
	copy(out, seedDishes)
	return out
}
