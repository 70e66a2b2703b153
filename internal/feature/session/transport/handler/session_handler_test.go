package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketer_backend/internal/feature/session/domain/entity"
	"marketer_backend/internal/feature/session/transport/handler"
	"marketer_backend/internal/feature/session/usecase"
	"marketer_backend/internal/platform/token"
)

// mockSessionUsecase はSessionUsecaseインターフェースのモック実装です。
type mockSessionUsecase struct {
	OpenFunc         func(ctx context.Context) (string, *entity.State, error)
	GetFunc          func(ctx context.Context, id string) (*entity.State, error)
	UpdateInputsFunc func(ctx context.Context, id string, in entity.UserInputs) (*entity.State, bool, error)
	ResetFunc        func(ctx context.Context, id string) (*entity.State, error)
}

func (m *mockSessionUsecase) Open(ctx context.Context) (string, *entity.State, error) {
	return m.OpenFunc(ctx)
}

func (m *mockSessionUsecase) Get(ctx context.Context, id string) (*entity.State, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockSessionUsecase) UpdateInputs(ctx context.Context, id string, in entity.UserInputs) (*entity.State, bool, error) {
	return m.UpdateInputsFunc(ctx, id, in)
}

func (m *mockSessionUsecase) Reset(ctx context.Context, id string) (*entity.State, error) {
	return m.ResetFunc(ctx, id)
}

// newRouter はテスト用セッションIDを注入したルーターを組み立てます。
func newRouter(h *handler.SessionHandler) *gin.Engine {
	router := gin.New()
	router.POST("/sessions", h.Open)
	withSID := func(c *gin.Context) { c.Set(token.ContextSessionID, "session-1") }
	router.GET("/session", withSID, h.Get)
	router.PUT("/session/inputs", withSID, h.UpdateInputs)
	router.POST("/session/reset", withSID, h.Reset)
	return router
}

func TestSessionHandler_Open(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		mockUC := &mockSessionUsecase{
			OpenFunc: func(ctx context.Context) (string, *entity.State, error) {
				return "token-abc", entity.NewDefaultState(), nil
			},
		}
		router := newRouter(handler.NewSessionHandler(mockUC))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/sessions", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"token-abc"`)
		assert.Contains(t, w.Body.String(), `"company_name":"숭실시스템즈"`)
	})

	t.Run("error: store unavailable", func(t *testing.T) {
		mockUC := &mockSessionUsecase{
			OpenFunc: func(ctx context.Context) (string, *entity.State, error) {
				return "", nil, errors.New("redis down")
			},
		}
		router := newRouter(handler.NewSessionHandler(mockUC))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/sessions", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"세션을 생성하지 못했습니다"}`, w.Body.String())
	})
}

func TestSessionHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		mockUC := &mockSessionUsecase{
			GetFunc: func(ctx context.Context, id string) (*entity.State, error) {
				assert.Equal(t, "session-1", id)
				return entity.NewDefaultState(), nil
			},
		}
		router := newRouter(handler.NewSessionHandler(mockUC))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/session", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"real_code":"ID"`)
	})

	t.Run("error: not found", func(t *testing.T) {
		mockUC := &mockSessionUsecase{
			GetFunc: func(ctx context.Context, id string) (*entity.State, error) {
				return nil, usecase.ErrSessionNotFound
			},
		}
		router := newRouter(handler.NewSessionHandler(mockUC))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/session", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"세션을 찾을 수 없습니다"}`, w.Body.String())
	})
}

func TestSessionHandler_UpdateInputs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    string
		mockFunc       func(ctx context.Context, id string, in entity.UserInputs) (*entity.State, bool, error)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "success: country resolved",
			requestBody: `{"company_name":"숭실시스템즈","country_input":"독일","keyword":"Sensor","budget":3000000}`,
			mockFunc: func(ctx context.Context, id string, in entity.UserInputs) (*entity.State, bool, error) {
				assert.Equal(t, "독일", in.CountryInput)
				st := entity.NewDefaultState()
				st.Inputs = in
				st.Inputs.RealCode = "DE"
				return st, true, nil
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"resolved":true`)
				assert.NotContains(t, body, "국가 식별 불가")
			},
		},
		{
			name:        "success: country unresolved",
			requestBody: `{"company_name":"숭실시스템즈","country_input":"Atlantis","keyword":"Sensor","budget":3000000}`,
			mockFunc: func(ctx context.Context, id string, in entity.UserInputs) (*entity.State, bool, error) {
				st := entity.NewDefaultState()
				st.Inputs = in
				st.Inputs.RealCode = ""
				return st, false, nil
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"resolved":false`)
				assert.Contains(t, body, "국가 식별 불가")
			},
		},
		{
			name:           "error: invalid json",
			requestBody:    `invalid`,
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"입력값이 올바르지 않습니다"}`, body)
			},
		},
		{
			name:        "error: not found",
			requestBody: `{"company_name":"숭실시스템즈","country_input":"독일","keyword":"Sensor","budget":3000000}`,
			mockFunc: func(ctx context.Context, id string, in entity.UserInputs) (*entity.State, bool, error) {
				return nil, false, usecase.ErrSessionNotFound
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"세션을 찾을 수 없습니다"}`, body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockSessionUsecase{UpdateInputsFunc: tt.mockFunc}
			router := newRouter(handler.NewSessionHandler(mockUC))

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPut, "/session/inputs", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkBody(t, w.Body.String())
		})
	}
}

func TestSessionHandler_Reset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockSessionUsecase{
		ResetFunc: func(ctx context.Context, id string) (*entity.State, error) {
			assert.Equal(t, "session-1", id)
			return entity.NewDefaultState(), nil
		},
	}
	router := newRouter(handler.NewSessionHandler(mockUC))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/session/reset", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"vision_analysis":""`)
}
