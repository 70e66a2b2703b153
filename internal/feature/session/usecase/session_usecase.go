// Package usecase はセッション状態のライフサイクルを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	contententity "marketer_backend/internal/feature/content/domain/entity"
	marketentity "marketer_backend/internal/feature/market/domain/entity"
	"marketer_backend/internal/feature/session/domain/entity"
	"marketer_backend/internal/platform/country"
)

// StateRepository はセッション状態の永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type StateRepository interface {
	Save(ctx context.Context, id string, st *entity.State) error
	Find(ctx context.Context, id string) (*entity.State, error)
	Delete(ctx context.Context, id string) error
}

// TokenGenerator はセッショントークンの発行を抽象化します。
type TokenGenerator interface {
	Generate(sessionID string) (string, error)
}

// SessionUsecase はセッションの開始・取得・入力更新・リセットと、
// 各ステージの生成物保存を提供します。
type SessionUsecase struct {
	repo   StateRepository
	tokens TokenGenerator
}

// NewSessionUsecase はSessionUsecaseの新しいインスタンスを生成します。
func NewSessionUsecase(repo StateRepository, tokens TokenGenerator) *SessionUsecase {
	return &SessionUsecase{repo: repo, tokens: tokens}
}

// Open は新しいセッションをデフォルト状態で作成し、セッショントークンを発行します。
func (u *SessionUsecase) Open(ctx context.Context) (string, *entity.State, error) {
	id, err := newSessionID()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	st := entity.NewDefaultState()
	if err := u.repo.Save(ctx, id, st); err != nil {
		return "", nil, fmt.Errorf("failed to save session: %w", err)
	}

	tok, err := u.tokens.Generate(id)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return tok, st, nil
}

// Get は現在のセッション状態を返します。
func (u *SessionUsecase) Get(ctx context.Context, id string) (*entity.State, error) {
	return u.repo.Find(ctx, id)
}

// UpdateInputs はユーザー入力を更新します。国名はリゾルバで2文字コードへ解決し、
// 解決できない場合は RealCode を空にして resolved=false を返します。
// 国コードに依存するステージは空の RealCode を「未解決」として扱います。
func (u *SessionUsecase) UpdateInputs(ctx context.Context, id string, in entity.UserInputs) (*entity.State, bool, error) {
	st, err := u.repo.Find(ctx, id)
	if err != nil {
		return nil, false, err
	}

	st.Inputs.CompanyName = in.CompanyName
	st.Inputs.CountryInput = in.CountryInput
	st.Inputs.Keyword = in.Keyword
	st.Inputs.Budget = in.Budget

	code, resolved := country.Resolve(in.CountryInput)
	if resolved {
		st.Inputs.RealCode = code
	} else {
		st.Inputs.RealCode = ""
	}

	if err := u.repo.Save(ctx, id, st); err != nil {
		return nil, false, err
	}
	return st, resolved, nil
}

// Reset はセッション状態をデフォルトへ再初期化します。
// 不整合な状態からの復旧や、最初からやり直す場合に使用します。
func (u *SessionUsecase) Reset(ctx context.Context, id string) (*entity.State, error) {
	st := entity.NewDefaultState()
	if err := u.repo.Save(ctx, id, st); err != nil {
		return nil, err
	}
	return st, nil
}

// SaveVisionAnalysis はカタログ分析結果を保存します。
func (u *SessionUsecase) SaveVisionAnalysis(ctx context.Context, id, text string) error {
	return u.mutate(ctx, id, func(st *entity.State) {
		st.VisionAnalysis = text
	})
}

// SaveMarketData は市場データ束を丸ごと置き換えます。
func (u *SessionUsecase) SaveMarketData(ctx context.Context, id string, md marketentity.MarketData) error {
	return u.mutate(ctx, id, func(st *entity.State) {
		st.MarketData = md
	})
}

// SaveFinalReport は戦略レポートを保存します。
func (u *SessionUsecase) SaveFinalReport(ctx context.Context, id, text string) error {
	return u.mutate(ctx, id, func(st *entity.State) {
		st.FinalReport = text
	})
}

// SaveEmails は2言語メールを保存します。
func (u *SessionUsecase) SaveEmails(ctx context.Context, id string, emails contententity.Emails) error {
	return u.mutate(ctx, id, func(st *entity.State) {
		st.Emails = emails
	})
}

// SaveSNSContent は4種SNS投稿を保存します。
func (u *SessionUsecase) SaveSNSContent(ctx context.Context, id string, sns contententity.SNSContent) error {
	return u.mutate(ctx, id, func(st *entity.State) {
		st.SNSContent = sns
	})
}

// mutate は find → 変更 → save の定型を共通化します。
func (u *SessionUsecase) mutate(ctx context.Context, id string, fn func(st *entity.State)) error {
	st, err := u.repo.Find(ctx, id)
	if err != nil {
		return err
	}
	fn(st)
	return u.repo.Save(ctx, id, st)
}

// newSessionID は128ビットのランダムなセッションIDを生成します。
func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
