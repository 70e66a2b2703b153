// Package handler はmarketフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketer_backend/internal/api"
	"marketer_backend/internal/feature/market/domain/entity"
	"marketer_backend/internal/feature/market/usecase"
	sessionentity "marketer_backend/internal/feature/session/domain/entity"
	sessionusecase "marketer_backend/internal/feature/session/usecase"
	"marketer_backend/internal/platform/token"
)

// MarketUsecase は市場データ集約のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketUsecase interface {
	Aggregate(ctx context.Context, in usecase.QueryInputs) entity.MarketData
}

// SessionStore はハンドラが必要とするセッション操作の射影です。
type SessionStore interface {
	Get(ctx context.Context, id string) (*sessionentity.State, error)
	SaveMarketData(ctx context.Context, id string, md entity.MarketData) error
}

// MarketHandler は市場インテリジェンスのHTTPリクエストを処理します。
type MarketHandler struct {
	uc       MarketUsecase
	sessions SessionStore
}

// NewMarketHandler はMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc MarketUsecase, sessions SessionStore) *MarketHandler {
	return &MarketHandler{uc: uc, sessions: sessions}
}

// Refresh は市場データ束を再生成してセッションへ保存します。
// 国コードが未解決でも呼び出し自体は成功し、該当サブ取得はN/A/空になります。
//
// エンドポイント: POST /v1/market/refresh
func (h *MarketHandler) Refresh(c *gin.Context) {
	sid := token.SessionID(c)

	st, err := h.sessions.Get(c.Request.Context(), sid)
	if err != nil {
		if errors.Is(err, sessionusecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "세션을 찾을 수 없습니다"})
			return
		}
		slog.Error("セッションの取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "세션 조회에 실패했습니다"})
		return
	}

	md := h.uc.Aggregate(c.Request.Context(), usecase.QueryInputs{
		CountryCode: st.Inputs.RealCode,
		CountryName: st.Inputs.CountryInput,
		Keyword:     st.Inputs.Keyword,
	})

	if err := h.sessions.SaveMarketData(c.Request.Context(), sid, md); err != nil {
		slog.Error("市場データの保存に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "시장 데이터 저장에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"market_data": md})
}
