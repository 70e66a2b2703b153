// Package entity はmarketフィーチャーのドメインモデルを定義します。
package entity

// 表示フォーマットの系列。指標ごとに整形ルールが異なります。
const (
	FamilyCurrencyBillions = "currency_billions" // 例: "$1234.0 B"
	FamilyMillions         = "millions"          // 例: "250.0 M"
	FamilyCurrency         = "currency"          // 例: "$4,580"
	FamilyPercent          = "percent"           // 例: "3.5%"
)

// Indicator はマクロ経済指標の定義です。
type Indicator struct {
	Code   string // データプロバイダの指標コード
	Name   string // 表示名
	Family string // 表示フォーマット系列
}

// Indicators は取得対象の6指標です。順序はダッシュボード・プロンプトの表示順です。
var Indicators = []Indicator{
	{Code: "NY.GDP.MKTP.CD", Name: "GDP (시장규모)", Family: FamilyCurrencyBillions},
	{Code: "NY.GDP.MKTP.KD.ZG", Name: "경제성장률", Family: FamilyPercent},
	{Code: "SP.POP.TOTL", Name: "총 인구수", Family: FamilyMillions},
	{Code: "NY.GNP.PCAP.CD", Name: "1인당 GNI", Family: FamilyCurrency},
	{Code: "FP.CPI.TOTL.ZG", Name: "물가상승률", Family: FamilyPercent},
	{Code: "IT.NET.USER.ZS", Name: "인터넷 사용률", Family: FamilyPercent},
}

// IndicatorValue は1指標の整形済み値です。取得失敗時は {"N/A", "-"} になります。
type IndicatorValue struct {
	Value string `json:"value"` // 整形済み表示値または "N/A"
	Year  string `json:"year"`  // 基準年または "-"
}

// TrendPoint は検索トレンド時系列の1点です。
type TrendPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Value int    `json:"value"`
}

// SearchResult はWeb検索の1件の結果です。
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// MarketData は1回の集約呼び出しで生成される市場データ束です。
// フィールド単位の部分更新は行わず、常に束ごと置き換えます。
type MarketData struct {
	Macro  map[string]IndicatorValue `json:"macro"`
	Report string                    `json:"report"`
	Trends []TrendPoint              `json:"trends"`
}

// NewEmptyMarketData は集約前の空の束を返します。
func NewEmptyMarketData() MarketData {
	return MarketData{
		Macro:  map[string]IndicatorValue{},
		Report: "",
		Trends: []TrendPoint{},
	}
}
