// Package usecase はcontentフィーチャー（戦略・アウトリーチ生成）のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"marketer_backend/internal/feature/content/domain/entity"
	marketentity "marketer_backend/internal/feature/market/domain/entity"
	sessionentity "marketer_backend/internal/feature/session/domain/entity"
)

const (
	// StrategyPromptTemplate は戦略レポート生成のプロンプトテンプレートです。
	StrategyPromptTemplate = "전략보고서 작성. 기업:%s->%s. 예산:%s원. \n[제품]%s\n[시장]%s\n[트렌드]%s"
	// EmailPromptTemplate はB2B営業メール生成のプロンプトテンプレートです。
	EmailPromptTemplate = "B2B 영업메일 작성. 언어:%s. 타겟:%s. 제품:%s"
)

// TextGenerator はテキスト生成を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ItemResult はバッチ生成における項目単位の結果です。
// 失敗した項目のErrは非nilで、本文にはエラープレースホルダが格納されます。
type ItemResult struct {
	Key string
	Err error
}

// ContentUsecase は戦略レポート・営業メール・SNS投稿の生成ロジックを提供します。
type ContentUsecase struct {
	gen TextGenerator
}

// NewContentUsecase はContentUsecaseの新しいインスタンスを生成します。
func NewContentUsecase(gen TextGenerator) *ContentUsecase {
	return &ContentUsecase{gen: gen}
}

// GenerateStrategy は入力・製品分析・市場データを束ねた戦略レポートを生成します。
// 生成エラーはそのまま呼び出し元へ伝播します。
func (u *ContentUsecase) GenerateStrategy(ctx context.Context, inputs sessionentity.UserInputs, vision string, md marketentity.MarketData) (string, error) {
	prompt := fmt.Sprintf(StrategyPromptTemplate,
		inputs.CompanyName, inputs.CountryInput, groupThousands(inputs.Budget),
		vision, macroSummary(md.Macro), md.Report)
	return u.gen.GenerateText(ctx, prompt)
}

// GenerateEmail は指定言語のB2B営業メールを1通生成します。
func (u *ContentUsecase) GenerateEmail(ctx context.Context, inputs sessionentity.UserInputs, vision string, lang entity.Language) (string, error) {
	prompt := fmt.Sprintf(EmailPromptTemplate, lang, inputs.CountryInput, vision)
	return u.gen.GenerateText(ctx, prompt)
}

// GenerateEmails はKR/EN両言語の営業メールを生成します。
// 項目単位で失敗を封じ込め、失敗項目の本文にはエラープレースホルダを格納します。
func (u *ContentUsecase) GenerateEmails(ctx context.Context, inputs sessionentity.UserInputs, vision string) (entity.Emails, []ItemResult) {
	var emails entity.Emails
	targets := []struct {
		key  string
		lang entity.Language
		dst  *string
	}{
		{"KR", entity.LanguageKorean, &emails.KR},
		{"EN", entity.LanguageEnglish, &emails.EN},
	}

	results := make([]ItemResult, 0, len(targets))
	for _, tg := range targets {
		text, err := u.GenerateEmail(ctx, inputs, vision, tg.lang)
		if err != nil {
			*tg.dst = failurePlaceholder(err)
		} else {
			*tg.dst = text
		}
		results = append(results, ItemResult{Key: tg.key, Err: err})
	}
	return emails, results
}

// GenerateSNS は指定プラットフォーム・言語のSNS投稿を1件生成します。
// 出力言語の指示はリクエストパラメータではなくプロンプト本文に埋め込みます。
func (u *ContentUsecase) GenerateSNS(ctx context.Context, inputs sessionentity.UserInputs, vision string, platform entity.Platform, lang entity.Language) (string, error) {
	langInstruction := "MUST be written in KOREAN."
	if lang == entity.LanguageEnglish {
		langInstruction = "MUST be written in ENGLISH."
	}
	style := "감성적이고 트렌디한 인스타그램 스타일 (해시태그 포함)"
	if platform == entity.PlatformLinkedIn {
		style = "전문적인 링크드인 비즈니스 스타일"
	}

	prompt := fmt.Sprintf(`Create a %s post for %s.
Target Market: %s
Product Info: %s
Style: %s
IMPORTANT: The output language %s`,
		platform, inputs.CompanyName, inputs.CountryInput, vision, style, langInstruction)

	return u.gen.GenerateText(ctx, prompt)
}

// GenerateSNSBatch はプラットフォーム×言語の4種のSNS投稿を生成します。
// 項目単位で失敗を封じ込めます。
func (u *ContentUsecase) GenerateSNSBatch(ctx context.Context, inputs sessionentity.UserInputs, vision string) (entity.SNSContent, []ItemResult) {
	var sns entity.SNSContent
	targets := []struct {
		key      string
		platform entity.Platform
		lang     entity.Language
		dst      *string
	}{
		{"Insta_KR", entity.PlatformInstagram, entity.LanguageKorean, &sns.InstaKR},
		{"Insta_EN", entity.PlatformInstagram, entity.LanguageEnglish, &sns.InstaEN},
		{"Linked_KR", entity.PlatformLinkedIn, entity.LanguageKorean, &sns.LinkedKR},
		{"Linked_EN", entity.PlatformLinkedIn, entity.LanguageEnglish, &sns.LinkedEN},
	}

	results := make([]ItemResult, 0, len(targets))
	for _, tg := range targets {
		text, err := u.GenerateSNS(ctx, inputs, vision, tg.platform, tg.lang)
		if err != nil {
			*tg.dst = failurePlaceholder(err)
		} else {
			*tg.dst = text
		}
		results = append(results, ItemResult{Key: tg.key, Err: err})
	}
	return sns, results
}

// macroSummary は指標を定義順で "名前: 値 (年)" の行に整形します。
func macroSummary(macro map[string]marketentity.IndicatorValue) string {
	lines := make([]string, 0, len(marketentity.Indicators))
	for _, ind := range marketentity.Indicators {
		v, ok := macro[ind.Name]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", ind.Name, v.Value, v.Year))
	}
	return strings.Join(lines, "\n")
}

// failurePlaceholder は失敗項目の本文に格納するプレースホルダです。
func failurePlaceholder(err error) string {
	return fmt.Sprintf("[생성 실패: %v]", err)
}

// groupThousands は整数を3桁区切りで整形します。
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
