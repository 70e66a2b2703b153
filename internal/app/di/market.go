package di

import (
	"marketer_backend/internal/feature/market/adapters/gtrends"
	"marketer_backend/internal/feature/market/adapters/websearch"
	"marketer_backend/internal/feature/market/adapters/worldbank"
	"marketer_backend/internal/feature/market/usecase"
	platformhttp "marketer_backend/internal/platform/http"
)

// NewMarketUsecase は3系統の外部データクライアントを設定済みで束ねます。
// 各クライアントは自前のタイムアウト付きHTTPクライアントを持ちます。
func NewMarketUsecase(gen usecase.ReportGenerator) *usecase.MarketUsecase {
	wbCfg := worldbank.LoadConfig()
	wsCfg := websearch.LoadConfig()
	gtCfg := gtrends.LoadConfig()

	return usecase.NewMarketUsecase(
		worldbank.NewClient(wbCfg, platformhttp.NewHTTPClient(wbCfg.Timeout)),
		websearch.NewClient(wsCfg, platformhttp.NewHTTPClient(wsCfg.Timeout)),
		gtrends.NewClient(gtCfg, platformhttp.NewHTTPClient(gtCfg.Timeout)),
		gen,
	)
}
