// Package entity はsessionフィーチャーのドメインモデルを定義します。
package entity

import (
	contententity "marketer_backend/internal/feature/content/domain/entity"
	marketentity "marketer_backend/internal/feature/market/domain/entity"
)

// UserInputs はユーザーが設定する基本入力です。
// RealCode はリゾルバが CountryInput を解決できた場合のみ非空になります。
type UserInputs struct {
	CompanyName  string `json:"company_name"`
	CountryInput string `json:"country_input"`
	RealCode     string `json:"real_code"`
	Keyword      string `json:"keyword"`
	Budget       int64  `json:"budget"`
}

// State は1ユーザーセッションの全状態です。入力と全生成物を保持し、
// 各パイプラインステージが自分の結果フィールドを丸ごと置き換えます。
// 生成物フィールドは常に「空のデフォルト形」か「完成した結果」のどちらかです。
type State struct {
	Inputs         UserInputs               `json:"inputs"`
	VisionAnalysis string                   `json:"vision_analysis"`
	MarketData     marketentity.MarketData  `json:"market_data"`
	FinalReport    string                   `json:"final_report"`
	Emails         contententity.Emails     `json:"emails"`
	SNSContent     contententity.SNSContent `json:"sns_content"`
}

// NewDefaultState はセッション開始時のデフォルト状態を返します。
// リセット時も同じ状態へ再初期化されます。
func NewDefaultState() *State {
	return &State{
		Inputs: UserInputs{
			CompanyName:  "숭실시스템즈",
			CountryInput: "인도네시아",
			RealCode:     "ID",
			Keyword:      "Food Packaging",
			Budget:       5000000,
		},
		VisionAnalysis: "",
		MarketData:     marketentity.NewEmptyMarketData(),
		FinalReport:    "",
		Emails:         contententity.Emails{},
		SNSContent:     contententity.SNSContent{},
	}
}
