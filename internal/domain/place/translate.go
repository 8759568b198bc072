package place

import "unicode"

// chineseCityTokens maps well-known Chinese place names to a search token the
// provider can match. Nominatim's free-text search is weak on CJK input, so a
// query that exactly equals one of these names is widened to its pinyin or
// English form. Anything else passes through untouched.
var chineseCityTokens = map[string]string{
	// Municipalities
	"北京": "beijing",
	"上海": "shanghai",
	"天津": "tianjin",
	"重庆": "chongqing",

	// Provincial capitals
	"哈尔滨":  "harbin",
	"长春":   "changchun",
	"沈阳":   "shenyang",
	"石家庄":  "shijiazhuang",
	"太原":   "taiyuan",
	"呼和浩特": "hohhot",
	"济南":   "jinan",
	"郑州":   "zhengzhou",
	"西安":   "xian",
	"兰州":   "lanzhou",
	"西宁":   "xining",
	"银川":   "yinchuan",
	"乌鲁木齐": "urumqi",
	"成都":   "chengdu",
	"贵阳":   "guiyang",
	"昆明":   "kunming",
	"拉萨":   "lhasa",
	"武汉":   "wuhan",
	"长沙":   "changsha",
	"南京":   "nanjing",
	"杭州":   "hangzhou",
	"合肥":   "hefei",
	"福州":   "fuzhou",
	"南昌":   "nanchang",
	"广州":   "guangzhou",
	"南宁":   "nanning",
	"海口":   "haikou",

	// Other major cities
	"深圳": "shenzhen",
	"苏州": "suzhou",
	"青岛": "qingdao",
	"大连": "dalian",
	"宁波": "ningbo",
	"厦门": "xiamen",
	"无锡": "wuxi",
	"佛山": "foshan",
	"东莞": "dongguan",
	"珠海": "zhuhai",
	"三亚": "sanya",
	"桂林": "guilin",
	"洛阳": "luoyang",
	"烟台": "yantai",
	"威海": "weihai",
	"温州": "wenzhou",
	"泉州": "quanzhou",
	"唐山": "tangshan",
	"保定": "baoding",

	// Hong Kong, Macau, Taiwan
	"香港": "hong kong",
	"澳门": "macau",
	"台北": "taipei",
	"高雄": "kaohsiung",
	"台中": "taichung",
	"台南": "tainan",
	"新竹": "hsinchu",

	// International cities commonly entered in Chinese
	"东京":  "tokyo",
	"大阪":  "osaka",
	"京都":  "kyoto",
	"首尔":  "seoul",
	"新加坡": "singapore",
	"曼谷":  "bangkok",
	"吉隆坡": "kuala lumpur",
	"伦敦":  "london",
	"巴黎":  "paris",
	"纽约":  "new york",
	"洛杉矶": "los angeles",
	"旧金山": "san francisco",
	"悉尼":  "sydney",
	"墨尔本": "melbourne",
	"莫斯科": "moscow",
	"柏林":  "berlin",
	"罗马":  "rome",
	"马德里": "madrid",
	"迪拜":  "dubai",
	"温哥华": "vancouver",
	"多伦多": "toronto",
}

// translateChineseCity returns the searchable token for an exactly matching
// Chinese city name, or the query unchanged.
func translateChineseCity(query string) string {
	if token, ok := chineseCityTokens[query]; ok {
		return token
	}
	return query
}

// containsHan reports whether any rune in s belongs to the Han script.
func containsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
