package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contententity "marketer_backend/internal/feature/content/domain/entity"
	marketentity "marketer_backend/internal/feature/market/domain/entity"
	"marketer_backend/internal/feature/session/domain/entity"
)

// memoryRepo はStateRepositoryのテスト用インメモリ実装です。
type memoryRepo struct {
	states map[string]*entity.State
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{states: map[string]*entity.State{}}
}

func (m *memoryRepo) Save(_ context.Context, id string, st *entity.State) error {
	cp := *st
	m.states[id] = &cp
	return nil
}

func (m *memoryRepo) Find(_ context.Context, id string) (*entity.State, error) {
	st, ok := m.states[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *st
	return &cp, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	delete(m.states, id)
	return nil
}

// fakeTokens はTokenGeneratorのテスト用実装です。
type fakeTokens struct{}

func (fakeTokens) Generate(sessionID string) (string, error) {
	return "token-" + sessionID, nil
}

func newTestUsecase() (*SessionUsecase, *memoryRepo) {
	repo := newMemoryRepo()
	return NewSessionUsecase(repo, fakeTokens{}), repo
}

func TestSessionUsecase_Open(t *testing.T) {
	uc, repo := newTestUsecase()

	tok, st, err := uc.Open(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, tok)
	assert.Equal(t, "숭실시스템즈", st.Inputs.CompanyName)
	assert.Equal(t, "ID", st.Inputs.RealCode)
	assert.Len(t, repo.states, 1)
}

func TestSessionUsecase_UpdateInputs(t *testing.T) {
	tests := []struct {
		name         string
		countryInput string
		wantResolved bool
		wantCode     string
	}{
		{"resolvable korean name", "독일", true, "DE"},
		{"resolvable english name", "Germany", true, "DE"},
		{"two letter passthrough", "Zz", true, "ZZ"},
		{"unresolvable name clears code", "Atlantis", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestUsecase()
			require.NoError(t, repo.Save(context.Background(), "s1", entity.NewDefaultState()))

			st, resolved, err := uc.UpdateInputs(context.Background(), "s1", entity.UserInputs{
				CompanyName:  "테스트상사",
				CountryInput: tt.countryInput,
				Keyword:      "Packaging Machine",
				Budget:       3000000,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantResolved, resolved)
			assert.Equal(t, tt.wantCode, st.Inputs.RealCode)
			assert.Equal(t, "테스트상사", st.Inputs.CompanyName)
			assert.Equal(t, int64(3000000), st.Inputs.Budget)
		})
	}
}

func TestSessionUsecase_UpdateInputs_SessionNotFound(t *testing.T) {
	uc, _ := newTestUsecase()

	_, _, err := uc.UpdateInputs(context.Background(), "missing", entity.UserInputs{CountryInput: "Germany"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// リセット後は、以前の変更に関わらず全フィールドがデフォルト状態と一致します。
func TestSessionUsecase_Reset_RestoresDefaults(t *testing.T) {
	uc, repo := newTestUsecase()

	mutated := entity.NewDefaultState()
	mutated.Inputs.CompanyName = "변경된회사"
	mutated.VisionAnalysis = "분석"
	mutated.FinalReport = "보고서"
	mutated.Emails = contententity.Emails{KR: "국문", EN: "english"}
	mutated.SNSContent = contententity.SNSContent{InstaKR: "인스타"}
	mutated.MarketData.Report = "시장 리포트"
	require.NoError(t, repo.Save(context.Background(), "s1", mutated))

	st, err := uc.Reset(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, entity.NewDefaultState(), st)
}

func TestSessionUsecase_SaveArtifacts(t *testing.T) {
	uc, repo := newTestUsecase()
	require.NoError(t, repo.Save(context.Background(), "s1", entity.NewDefaultState()))

	require.NoError(t, uc.SaveVisionAnalysis(context.Background(), "s1", "분석 결과"))

	md := marketentity.NewEmptyMarketData()
	md.Report = "산업 리포트"
	require.NoError(t, uc.SaveMarketData(context.Background(), "s1", md))

	require.NoError(t, uc.SaveFinalReport(context.Background(), "s1", "전략"))
	require.NoError(t, uc.SaveEmails(context.Background(), "s1", contententity.Emails{KR: "kr", EN: "en"}))
	require.NoError(t, uc.SaveSNSContent(context.Background(), "s1", contententity.SNSContent{InstaKR: "a", InstaEN: "b", LinkedKR: "c", LinkedEN: "d"}))

	st, err := uc.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "분석 결과", st.VisionAnalysis)
	assert.Equal(t, "산업 리포트", st.MarketData.Report)
	assert.Equal(t, "전략", st.FinalReport)
	assert.Equal(t, "kr", st.Emails.KR)
	assert.Equal(t, "d", st.SNSContent.LinkedEN)
}

func TestSessionUsecase_SaveArtifact_SessionNotFound(t *testing.T) {
	uc, _ := newTestUsecase()

	err := uc.SaveVisionAnalysis(context.Background(), "missing", "분석")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
