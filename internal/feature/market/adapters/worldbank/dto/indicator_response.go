// Package dto defines data transfer objects for the World Bank API responses.
package dto

// IndicatorRow は指標レスポンスの1行です。
// World Bank APIは [メタデータ, 行配列] の2要素JSON配列を返すため、
// 呼び出し側は2番目の要素をこの型の配列としてデコードします。
type IndicatorRow struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"` // データ未集計の年はnull
}
