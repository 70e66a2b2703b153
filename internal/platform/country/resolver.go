// Package country は自由入力の国名をISO alpha-2コードへ解決します。
// Package country resolves free-text country names to ISO alpha-2 codes.
package country

import "strings"

// aliases は国名の別名（한국어/영어/약어）から2文字コードへの固定テーブルです。
// ネットワーク呼び出しは行いません。
var aliases = map[string]string{
	"대한민국": "KR", "한국": "KR", "KOREA": "KR", "SOUTH KOREA": "KR",
	"미국": "US", "USA": "US", "AMERICA": "US",
	"중국": "CN", "CHINA": "CN",
	"일본": "JP", "JAPAN": "JP",
	"베트남": "VN", "VIETNAM": "VN",
	"인도네시아": "ID", "INDONESIA": "ID", "인니": "ID", "INA": "ID",
	"태국": "TH", "THAILAND": "TH",
	"인도": "IN", "INDIA": "IN",
	"독일": "DE", "GERMANY": "DE",
	"프랑스": "FR", "FRANCE": "FR",
	"영국": "GB", "UK": "GB",
	"호주": "AU", "AUSTRALIA": "AU",
}

// Resolve は入力を大文字化・トリムして別名テーブルを引きます。
// テーブルに無い2文字入力はそのままコードとして受け入れます（ISO alpha-2とみなす）。
// テーブル照合はパススルーより優先されます。例: "UK" は別名として "GB" に解決されます。
func Resolve(input string) (string, bool) {
	clean := strings.ToUpper(strings.TrimSpace(input))
	if code, ok := aliases[clean]; ok {
		return code, true
	}
	if len([]rune(clean)) == 2 {
		return clean, true
	}
	return "", false
}
