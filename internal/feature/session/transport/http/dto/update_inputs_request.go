// Package dto はsessionフィーチャーのHTTPリクエスト型を定義します。
package dto

// UpdateInputsRequest はユーザー入力の更新リクエストです。
// RealCode はクライアントからは受け取らず、サーバー側のリゾルバが決定します。
type UpdateInputsRequest struct {
	CompanyName  string `json:"company_name" binding:"required"`
	CountryInput string `json:"country_input" binding:"required"`
	Keyword      string `json:"keyword" binding:"required"`
	Budget       int64  `json:"budget" binding:"gte=0"`
}
