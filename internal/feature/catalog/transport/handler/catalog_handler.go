// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketer_backend/internal/api"
	"marketer_backend/internal/feature/catalog/domain/entity"
	"marketer_backend/internal/feature/catalog/usecase"
	"marketer_backend/internal/platform/token"
)

// CatalogUsecase はカタログ精密分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	Analyze(ctx context.Context, pdfData []byte) (*entity.Analysis, error)
}

// SessionStore はハンドラが必要とするセッション操作の射影です。
type SessionStore interface {
	SaveVisionAnalysis(ctx context.Context, id, text string) error
}

// CatalogHandler はカタログ分析のHTTPリクエストを処理します。
type CatalogHandler struct {
	uc       CatalogUsecase
	sessions SessionStore
}

// NewCatalogHandler はCatalogHandlerの新しいインスタンスを生成します。
func NewCatalogHandler(uc CatalogUsecase, sessions SessionStore) *CatalogHandler {
	return &CatalogHandler{uc: uc, sessions: sessions}
}

// Analyze はカタログPDFをアップロードして製品分析を生成し、セッションへ保存します。
//
// エンドポイント: POST /v1/catalog/analyze
// Content-Type: multipart/form-data
// フィールド: catalog（PDFファイル、最大20MB）
func (h *CatalogHandler) Analyze(c *gin.Context) {
	file, err := c.FormFile("catalog")
	if err != nil {
		slog.Warn("カタログファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "카탈로그 파일이 필요합니다"})
		return
	}

	// サイズ超過はバッファリング前に拒否する
	if file.Size > usecase.MaxDocumentSize {
		slog.Warn("カタログファイルがサイズ上限を超過", "size", file.Size, "remote_addr", c.ClientIP())
		c.JSON(http.StatusRequestEntityTooLarge, api.ErrorResponse{Error: "카탈로그 파일이 너무 큽니다 (최대 20MB)"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("カタログファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "카탈로그 읽기에 실패했습니다"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("カタログファイルのクローズに失敗", "error", err)
		}
	}()

	pdfData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("カタログデータの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "카탈로그 읽기에 실패했습니다"})
		return
	}

	analysis, err := h.uc.Analyze(c.Request.Context(), pdfData)
	if err != nil {
		slog.Error("カタログ分析に失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "카탈로그 분석에 실패했습니다"})
		return
	}

	sid := token.SessionID(c)
	if err := h.sessions.SaveVisionAnalysis(c.Request.Context(), sid, analysis.Text); err != nil {
		slog.Error("分析結果の保存に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "분석 결과 저장에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vision_analysis": analysis.Text,
		"page_count":      analysis.PageCount,
	})
}
