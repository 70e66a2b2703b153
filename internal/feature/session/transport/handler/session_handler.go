// Package handler はsessionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketer_backend/internal/api"
	"marketer_backend/internal/feature/session/domain/entity"
	"marketer_backend/internal/feature/session/transport/http/dto"
	"marketer_backend/internal/feature/session/usecase"
	"marketer_backend/internal/platform/token"
)

// SessionUsecase はセッション操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SessionUsecase interface {
	Open(ctx context.Context) (string, *entity.State, error)
	Get(ctx context.Context, id string) (*entity.State, error)
	UpdateInputs(ctx context.Context, id string, in entity.UserInputs) (*entity.State, bool, error)
	Reset(ctx context.Context, id string) (*entity.State, error)
}

// SessionHandler はセッション関連のHTTPリクエストを処理します。
type SessionHandler struct {
	uc SessionUsecase
}

// NewSessionHandler はSessionHandlerの新しいインスタンスを生成します。
func NewSessionHandler(uc SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Open は新しいセッションを開きます。
//
// エンドポイント: POST /v1/sessions
func (h *SessionHandler) Open(c *gin.Context) {
	tok, st, err := h.uc.Open(c.Request.Context())
	if err != nil {
		slog.Error("セッションの作成に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "세션을 생성하지 못했습니다"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": tok, "state": st})
}

// Get は現在のセッション状態を返します。
//
// エンドポイント: GET /v1/session
func (h *SessionHandler) Get(c *gin.Context) {
	st, err := h.uc.Get(c.Request.Context(), token.SessionID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "세션을 찾을 수 없습니다"})
			return
		}
		slog.Error("セッションの取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "세션 조회에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": st})
}

// UpdateInputs はユーザー入力を更新し、国コードの解決結果を返します。
// 解決できない国名は検証メッセージとして返し、RealCode を空にします。
//
// エンドポイント: PUT /v1/session/inputs
func (h *SessionHandler) UpdateInputs(c *gin.Context) {
	var req dto.UpdateInputsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("入力更新リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "입력값이 올바르지 않습니다"})
		return
	}

	st, resolved, err := h.uc.UpdateInputs(c.Request.Context(), token.SessionID(c), entity.UserInputs{
		CompanyName:  req.CompanyName,
		CountryInput: req.CountryInput,
		Keyword:      req.Keyword,
		Budget:       req.Budget,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "세션을 찾을 수 없습니다"})
			return
		}
		slog.Error("入力の更新に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "입력 저장에 실패했습니다"})
		return
	}

	resp := gin.H{"state": st, "resolved": resolved}
	if !resolved {
		resp["message"] = "국가 식별 불가"
	}
	c.JSON(http.StatusOK, resp)
}

// Reset はセッション状態をデフォルトへ戻します。
//
// エンドポイント: POST /v1/session/reset
func (h *SessionHandler) Reset(c *gin.Context) {
	st, err := h.uc.Reset(c.Request.Context(), token.SessionID(c))
	if err != nil {
		slog.Error("セッションのリセットに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "세션 초기화에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": st})
}
