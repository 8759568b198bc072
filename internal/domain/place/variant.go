package place

import "strings"

// traditionalGlyphs is a reference sample of Traditional Chinese characters
// whose Simplified forms differ. It is deliberately not a conversion table:
// it only needs to be large enough to score which of two provided variants
// leans Traditional.
const traditionalGlyphs = "個東車紅馬無鳥熱時語頭魚園長門問間開關兒來對後樂發現貝聲報見壹貳參" +
	"萬與專業絲兩嚴喪豐臨為麗舉義烏喬習鄉書買亂爭雲亞產畝親億僅從侖倉儀們價眾優會傘偉傳傷倫" +
	"偽體餘傭僑儲區醫華協單賣臺壽夢奮奧妝婦媽孫學寧寶實審寫寬對導壯聲殼備復處務敗數齋斷舊" +
	"術機權條殺雜點煩燒熱愛獨獲環現電當疇癢發皚監蓋縣礦確禮禕離種積稱窮競筆筧類糧緊紀約級紅" +
	"紙紛紹經給絡統繼續總綠網罰罷聖聽職聯肅膚臉與興舉舊藝藥蘭蘇蟲衛補裝見規視覺計訂記講許論" +
	"設訪證評識詞試話詢該詳誤說請諸謝譯議護讀變讓豈貝負財貢貨質購貫賬費賢賽趙車軌軍輕載輸轉" +
	"辦邊達遷選遲郵釋針鐘鋼錢錄鎮長閉開閱隊階際陳隨隱雙雞難電靜面頁頂順須預領頻題顏願類風飛" +
	"飯飽餐餘馬駐騎驗骨體鬥魚鮮鳥鳴麥點齊廣慶島嶼陽灣澤齡衝徑"

var traditionalSet = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(traditionalGlyphs)/3)
	for _, r := range traditionalGlyphs {
		set[r] = struct{}{}
	}
	return set
}()

func countTraditional(s string) int {
	n := 0
	for _, r := range s {
		if _, ok := traditionalSet[r]; ok {
			n++
		}
	}
	return n
}

// selectPreferredVariant disambiguates a label that carries two renderings of
// the same name. "A;B" pairs are scored against the Traditional reference set
// and the half with strictly fewer Traditional glyphs wins, i.e. the
// Simplified rendering; on a tie the second half is returned. "A/B" labels
// keep the part before the first slash, which the provider orders first.
// This is a best-effort heuristic, not script conversion.
func selectPreferredVariant(label string) string {
	label = strings.TrimSpace(label)

	if first, second, ok := strings.Cut(label, ";"); ok {
		first = strings.TrimSpace(first)
		second = strings.TrimSpace(second)
		if first != "" && second != "" {
			if countTraditional(first) < countTraditional(second) {
				return first
			}
			return second
		}
	}

	if before, _, ok := strings.Cut(label, "/"); ok {
		return strings.TrimSpace(before)
	}

	return label
}
