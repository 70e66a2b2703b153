// Package router はHTTPルーティングを定義します。
package router

import (
	"github.com/gin-gonic/gin"

	cataloghandler "marketer_backend/internal/feature/catalog/transport/handler"
	contenthandler "marketer_backend/internal/feature/content/transport/handler"
	exporthandler "marketer_backend/internal/feature/export/transport/handler"
	markethandler "marketer_backend/internal/feature/market/transport/handler"
	sessionhandler "marketer_backend/internal/feature/session/transport/handler"
	"marketer_backend/internal/platform/http/handler"
	"marketer_backend/internal/platform/token"
)

func NewRouter(session *sessionhandler.SessionHandler, catalog *cataloghandler.CatalogHandler,
	market *markethandler.MarketHandler, content *contenthandler.ContentHandler,
	export *exporthandler.ExportHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	v1 := r.Group("/v1")
	// セッション開始（トークン発行）
	v1.POST("/sessions", session.Open)

	// セッショントークン必須のルート
	auth := v1.Group("/")
	auth.Use(token.SessionRequired())
	{
		auth.GET("/session", session.Get)
		auth.PUT("/session/inputs", session.UpdateInputs)
		auth.POST("/session/reset", session.Reset)
		auth.POST("/catalog/analyze", catalog.Analyze)
		auth.POST("/market/refresh", market.Refresh)
		auth.POST("/strategy", content.Strategy)
		auth.POST("/emails", content.Emails)
		auth.POST("/sns", content.SNS)
		auth.GET("/export/docx", export.Download)
	}

	return r
}
