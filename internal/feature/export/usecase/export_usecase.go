// Package usecase は最終成果物のドキュメント組み立てロジックを実装します。
package usecase

import (
	"errors"
	"fmt"
	"time"

	sessionentity "marketer_backend/internal/feature/session/domain/entity"
)

// ErrNotReady は前段の成果物（戦略レポート・国文メール）が未生成の場合に返されます。
var ErrNotReady = errors.New("export: strategy report or KR email not generated yet")

// Section は見出しと本文の組です。Levelは見出し階層（1または2）です。
// Headingが空のセクションは本文のみを出力します。
type Section struct {
	Heading string
	Level   int
	Body    string
}

// Document はレンダリング前のドキュメント構造です。
// 見出し階層はタイトル + H1×3 + セクション3配下のH2×2で固定です。
type Document struct {
	Title    string
	Date     string
	Sections []Section
}

// DocumentRenderer はDocumentのバイト列化を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DocumentRenderer interface {
	Render(doc Document) ([]byte, error)
}

// ExportUsecase は最終ドキュメントのエクスポートロジックを提供します。
type ExportUsecase struct {
	renderer DocumentRenderer
	now      func() time.Time
}

// NewExportUsecase はExportUsecaseの新しいインスタンスを生成します。
func NewExportUsecase(renderer DocumentRenderer) *ExportUsecase {
	return &ExportUsecase{renderer: renderer, now: time.Now}
}

// Export はセッション状態から最終ドキュメントを組み立ててバイト列化します。
// 戦略レポートまたは国文メールが空の場合はErrNotReadyを返します。
func (u *ExportUsecase) Export(st *sessionentity.State) (string, []byte, error) {
	if st.FinalReport == "" || st.Emails.KR == "" {
		return "", nil, ErrNotReady
	}

	doc := buildDocument(st, u.now())
	data, err := u.renderer.Render(doc)
	if err != nil {
		return "", nil, fmt.Errorf("render document: %w", err)
	}
	return fmt.Sprintf("Strategy_%s.docx", st.Inputs.CompanyName), data, nil
}

// buildDocument は固定の見出し階層でドキュメント構造を組み立てます。
func buildDocument(st *sessionentity.State, now time.Time) Document {
	return Document{
		Title: fmt.Sprintf("%s - %s 진출 전략 보고서", st.Inputs.CompanyName, st.Inputs.CountryInput),
		Date:  "생성 일자: " + now.Format("2006-01-02"),
		Sections: []Section{
			{Heading: "1. 제품 및 내부 역량 정밀 분석", Level: 1, Body: st.VisionAnalysis},
			{Heading: "2. 시장 진입 전략", Level: 1, Body: st.FinalReport},
			{Heading: "3. B2B 영업 제안 메일", Level: 1, Body: ""},
			{Heading: "[국문]", Level: 2, Body: st.Emails.KR},
			{Heading: "[English]", Level: 2, Body: st.Emails.EN},
		},
	}
}
