// Package api はHTTPレスポンスの共通型を定義します。
package api

// ErrorResponse is the common error payload for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ItemStatus は複数生成バッチ内の1項目の結果を表します。
// 一部の呼び出しだけが失敗した場合でも、成功した項目は保存されます。
type ItemStatus struct {
	Key   string `json:"key"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
