package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketer_backend/internal/feature/export/transport/handler"
	"marketer_backend/internal/feature/export/usecase"
	sessionentity "marketer_backend/internal/feature/session/domain/entity"
	"marketer_backend/internal/platform/token"
)

// mockExportUsecase はExportUsecaseインターフェースのモック実装です。
type mockExportUsecase struct {
	ExportFunc func(st *sessionentity.State) (string, []byte, error)
}

func (m *mockExportUsecase) Export(st *sessionentity.State) (string, []byte, error) {
	return m.ExportFunc(st)
}

// mockSessionStore はSessionStoreインターフェースのモック実装です。
type mockSessionStore struct {
	GetFunc func(ctx context.Context, id string) (*sessionentity.State, error)
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (*sessionentity.State, error) {
	return m.GetFunc(ctx, id)
}

func newRouter(h *handler.ExportHandler) *gin.Engine {
	router := gin.New()
	router.GET("/export/docx", func(c *gin.Context) {
		c.Set(token.ContextSessionID, "session-1")
	}, h.Download)
	return router
}

func TestExportHandler_Download(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: attachment headers", func(t *testing.T) {
		mockUC := &mockExportUsecase{
			ExportFunc: func(st *sessionentity.State) (string, []byte, error) {
				return "Strategy_숭실시스템즈.docx", []byte("PK-docx-bytes"), nil
			},
		}
		store := &mockSessionStore{
			GetFunc: func(ctx context.Context, id string) (*sessionentity.State, error) {
				return sessionentity.NewDefaultState(), nil
			},
		}
		router := newRouter(handler.NewExportHandler(mockUC, store))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/export/docx", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		// 非ASCIIファイル名はRFC 5987のfilename*で渡し、filename=はASCIIフォールバック
		assert.Equal(t,
			`attachment; filename="Strategy_______.docx"; filename*=UTF-8''Strategy_%EC%88%AD%EC%8B%A4%EC%8B%9C%EC%8A%A4%ED%85%9C%EC%A6%88.docx`,
			w.Header().Get("Content-Disposition"))
		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			w.Header().Get("Content-Type"))
		assert.Equal(t, "PK-docx-bytes", w.Body.String())
	})

	t.Run("error: artifacts not ready", func(t *testing.T) {
		mockUC := &mockExportUsecase{
			ExportFunc: func(st *sessionentity.State) (string, []byte, error) {
				return "", nil, usecase.ErrNotReady
			},
		}
		store := &mockSessionStore{
			GetFunc: func(ctx context.Context, id string) (*sessionentity.State, error) {
				return sessionentity.NewDefaultState(), nil
			},
		}
		router := newRouter(handler.NewExportHandler(mockUC, store))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/export/docx", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"먼저 전략 보고서와 영업 메일을 생성해주세요"}`, w.Body.String())
	})

	t.Run("error: render fails", func(t *testing.T) {
		mockUC := &mockExportUsecase{
			ExportFunc: func(st *sessionentity.State) (string, []byte, error) {
				return "", nil, errors.New("zip failed")
			},
		}
		store := &mockSessionStore{
			GetFunc: func(ctx context.Context, id string) (*sessionentity.State, error) {
				return sessionentity.NewDefaultState(), nil
			},
		}
		router := newRouter(handler.NewExportHandler(mockUC, store))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/export/docx", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"문서 생성에 실패했습니다"}`, w.Body.String())
	})
}
