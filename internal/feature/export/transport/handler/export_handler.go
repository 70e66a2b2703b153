// Package handler はexportフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"marketer_backend/internal/api"
	"marketer_backend/internal/feature/export/usecase"
	sessionentity "marketer_backend/internal/feature/session/domain/entity"
	sessionusecase "marketer_backend/internal/feature/session/usecase"
	"marketer_backend/internal/platform/token"
)

// docxMIME はOOXMLワードプロセッシングドキュメントのMIMEタイプです。
const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ExportUsecase はドキュメントエクスポートのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ExportUsecase interface {
	Export(st *sessionentity.State) (string, []byte, error)
}

// SessionStore はハンドラが必要とするセッション操作の射影です。
type SessionStore interface {
	Get(ctx context.Context, id string) (*sessionentity.State, error)
}

// ExportHandler は最終ドキュメントダウンロードのHTTPリクエストを処理します。
type ExportHandler struct {
	uc       ExportUsecase
	sessions SessionStore
}

// NewExportHandler はExportHandlerの新しいインスタンスを生成します。
func NewExportHandler(uc ExportUsecase, sessions SessionStore) *ExportHandler {
	return &ExportHandler{uc: uc, sessions: sessions}
}

// Download は最終ドキュメントを組み立ててダウンロードさせます。
// 前段の成果物が未生成の場合は409を返します。
//
// エンドポイント: GET /v1/export/docx
func (h *ExportHandler) Download(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), token.SessionID(c))
	if err != nil {
		if errors.Is(err, sessionusecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "세션을 찾을 수 없습니다"})
			return
		}
		slog.Error("セッションの取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "세션 조회에 실패했습니다"})
		return
	}

	filename, data, err := h.uc.Export(st)
	if err != nil {
		if errors.Is(err, usecase.ErrNotReady) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "먼저 전략 보고서와 영업 메일을 생성해주세요"})
			return
		}
		slog.Error("ドキュメントのレンダリングに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "문서 생성에 실패했습니다"})
		return
	}

	c.Header("Content-Disposition", contentDisposition(filename))
	c.Data(http.StatusOK, docxMIME, data)
}

// contentDisposition は添付ヘッダを組み立てます。非ASCIIのファイル名は
// RFC 5987のfilename*パラメータで渡し、filename=にはASCIIフォールバックを入れます。
func contentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s",
		asciiFallback(filename), url.PathEscape(filename))
}

// asciiFallback は非ASCII文字を "_" に置き換えます。
func asciiFallback(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return '_'
		}
		return r
	}, s)
}
