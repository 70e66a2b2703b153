// Package handler はcontentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketer_backend/internal/api"
	"marketer_backend/internal/feature/content/domain/entity"
	"marketer_backend/internal/feature/content/usecase"
	marketentity "marketer_backend/internal/feature/market/domain/entity"
	sessionentity "marketer_backend/internal/feature/session/domain/entity"
	sessionusecase "marketer_backend/internal/feature/session/usecase"
	"marketer_backend/internal/platform/token"
)

// ContentUsecase は戦略・アウトリーチ生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ContentUsecase interface {
	GenerateStrategy(ctx context.Context, inputs sessionentity.UserInputs, vision string, md marketentity.MarketData) (string, error)
	GenerateEmails(ctx context.Context, inputs sessionentity.UserInputs, vision string) (entity.Emails, []usecase.ItemResult)
	GenerateSNSBatch(ctx context.Context, inputs sessionentity.UserInputs, vision string) (entity.SNSContent, []usecase.ItemResult)
}

// SessionStore はハンドラが必要とするセッション操作の射影です。
type SessionStore interface {
	Get(ctx context.Context, id string) (*sessionentity.State, error)
	SaveFinalReport(ctx context.Context, id, report string) error
	SaveEmails(ctx context.Context, id string, emails entity.Emails) error
	SaveSNSContent(ctx context.Context, id string, sns entity.SNSContent) error
}

// ContentHandler は戦略レポート・営業メール・SNS投稿のHTTPリクエストを処理します。
type ContentHandler struct {
	uc       ContentUsecase
	sessions SessionStore
}

// NewContentHandler はContentHandlerの新しいインスタンスを生成します。
func NewContentHandler(uc ContentUsecase, sessions SessionStore) *ContentHandler {
	return &ContentHandler{uc: uc, sessions: sessions}
}

// getState はセッション状態を取得し、失敗時はレスポンスを書いてnilを返します。
func (h *ContentHandler) getState(c *gin.Context) *sessionentity.State {
	st, err := h.sessions.Get(c.Request.Context(), token.SessionID(c))
	if err != nil {
		if errors.Is(err, sessionusecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "세션을 찾을 수 없습니다"})
			return nil
		}
		slog.Error("セッションの取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "세션 조회에 실패했습니다"})
		return nil
	}
	return st
}

// Strategy は戦略レポートを生成してセッションへ保存します。
//
// エンドポイント: POST /v1/strategy
func (h *ContentHandler) Strategy(c *gin.Context) {
	st := h.getState(c)
	if st == nil {
		return
	}

	report, err := h.uc.GenerateStrategy(c.Request.Context(), st.Inputs, st.VisionAnalysis, st.MarketData)
	if err != nil {
		slog.Error("戦略レポート生成に失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "전략 보고서 생성에 실패했습니다. 다시 시도해주세요"})
		return
	}

	if err := h.sessions.SaveFinalReport(c.Request.Context(), token.SessionID(c), report); err != nil {
		slog.Error("戦略レポートの保存に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "보고서 저장에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"final_report": report})
}

// Emails はKR/EN両言語の営業メールを生成してセッションへ保存します。
// 片方だけ失敗した場合も成功分は保存され、項目別ステータスで報告されます。
//
// エンドポイント: POST /v1/emails
func (h *ContentHandler) Emails(c *gin.Context) {
	st := h.getState(c)
	if st == nil {
		return
	}

	emails, results := h.uc.GenerateEmails(c.Request.Context(), st.Inputs, st.VisionAnalysis)
	statuses, allFailed := toItemStatuses(results)
	if allFailed {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "메일 생성에 실패했습니다. 다시 시도해주세요",
			"items": statuses,
		})
		return
	}

	if err := h.sessions.SaveEmails(c.Request.Context(), token.SessionID(c), emails); err != nil {
		slog.Error("営業メールの保存に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "메일 저장에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"emails": emails, "items": statuses})
}

// SNS はプラットフォーム×言語の4種のSNS投稿を生成してセッションへ保存します。
//
// エンドポイント: POST /v1/sns
func (h *ContentHandler) SNS(c *gin.Context) {
	st := h.getState(c)
	if st == nil {
		return
	}

	sns, results := h.uc.GenerateSNSBatch(c.Request.Context(), st.Inputs, st.VisionAnalysis)
	statuses, allFailed := toItemStatuses(results)
	if allFailed {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "SNS 콘텐츠 생성에 실패했습니다. 다시 시도해주세요",
			"items": statuses,
		})
		return
	}

	if err := h.sessions.SaveSNSContent(c.Request.Context(), token.SessionID(c), sns); err != nil {
		slog.Error("SNS投稿の保存に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "SNS 콘텐츠 저장에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sns_content": sns, "items": statuses})
}

// toItemStatuses は項目結果をレスポンス用ステータスへ変換し、全滅かどうかを返します。
func toItemStatuses(results []usecase.ItemResult) ([]api.ItemStatus, bool) {
	statuses := make([]api.ItemStatus, 0, len(results))
	allFailed := len(results) > 0
	for _, r := range results {
		s := api.ItemStatus{Key: r.Key, OK: r.Err == nil}
		if r.Err != nil {
			s.Error = r.Err.Error()
		} else {
			allFailed = false
		}
		statuses = append(statuses, s)
	}
	return statuses, allFailed
}
