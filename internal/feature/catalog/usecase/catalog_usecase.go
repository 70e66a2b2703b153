// Package usecase はcatalogフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"marketer_backend/internal/feature/catalog/domain/entity"
)

const (
	// MaxDocumentSize はカタログアップロードの最大サイズ（20MB）です。
	MaxDocumentSize = 20 * 1024 * 1024
	// PlaceholderNoCredential は生成クレデンシャル未設定時に返す固定メッセージです。
	// この場合はネットワーク呼び出し自体を行いません。
	PlaceholderNoCredential = "API Key 필요"

	// AnalysisPrompt はカタログ精密分析のプロンプトです。
	AnalysisPrompt = `당신은 20년 경력의 수석 기술 마케터입니다. 업로드된 카탈로그(PDF)를 정밀 분석하여 보고서를 작성하세요.
단순한 요약이 아니라, 카탈로그에 있는 구체적인 스펙, 수치, 인증 마크, 기술 용어를 인용하여 전문성 있게 작성해야 합니다.

[분석 항목]
1. 핵심 제품 포트폴리오 (Core Products): 주요 제품 라인업을 나열하고 각각의 특징을 구체적으로 설명하세요.
2. 기술적 차별점 (Technical USP): 경쟁사 대비 돋보이는 기술, 특허, 정밀도, 속도, 소재(SUS 등) 등의 스펙을 강조하고, HACCP·GMP 등 인증 마크가 보이면 반드시 언급하세요.
3. 고객 도입 효과 (Customer Benefits): 도입 시 공장이 얻게 되는 이득(생산성 향상, 이물질 사고 예방 등)을 구체적으로 서술하세요.
4. 추천 타겟 산업: 이 제품이 가장 필요한 산업군(예: 제과, 육가공, 수산물 등)을 추론하세요.

[작성 지침]
- 각 항목당 최소 3~5문장으로 상세하게 작성하세요.
- 톤앤매너: 신뢰감 있고 전문적인 비즈니스 어조.`
)

// Config はカタログ分析の設定を保持します。
type Config struct {
	// MaxPages は分析対象とする先頭ページ数の上限です。
	// コストとレイテンシの上限であり、実カタログはこれを超えることが多い点に注意。
	MaxPages int
	// RenderScale はページラスタライズの倍率です。
	RenderScale float64
}

// LoadConfig は環境変数からカタログ分析設定を読み込みます。
// CATALOG_MAX_PAGES（デフォルト3）とCATALOG_RENDER_SCALE（デフォルト1.5）を参照します。
func LoadConfig() Config {
	cfg := Config{MaxPages: 3, RenderScale: 1.5}
	if v := os.Getenv("CATALOG_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxPages = n
		}
	}
	if v := os.Getenv("CATALOG_RENDER_SCALE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RenderScale = f
		}
	}
	return cfg
}

// PageRenderer はドキュメント先頭ページ群のPNG化を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PageRenderer interface {
	RenderPages(data []byte, maxPages int, scale float64) ([][]byte, error)
}

// VisionGenerator はマルチモーダル生成を抽象化します。
type VisionGenerator interface {
	// Ready はクレデンシャルが設定済みかを返します。
	Ready() bool
	GenerateWithImages(ctx context.Context, prompt string, images [][]byte) (string, error)
}

// TextExtractor は画像からの印字テキスト抽出を抽象化します。nil許容の補助機能です。
type TextExtractor interface {
	ExtractText(ctx context.Context, imageData []byte) (string, error)
}

// CatalogUsecase はカタログ精密分析のビジネスロジックを提供します。
type CatalogUsecase struct {
	cfg       Config
	renderer  PageRenderer
	gen       VisionGenerator
	extractor TextExtractor // nilの場合はOCR補完をスキップ
}

// NewCatalogUsecase はCatalogUsecaseの新しいインスタンスを生成します。
// extractor はnilでも構いません。
func NewCatalogUsecase(cfg Config, renderer PageRenderer, gen VisionGenerator, extractor TextExtractor) *CatalogUsecase {
	return &CatalogUsecase{cfg: cfg, renderer: renderer, gen: gen, extractor: extractor}
}

// Analyze はカタログPDFを分析し、生成された分析レポートを返します。
// クレデンシャル未設定の場合はエラーではなく固定プレースホルダを返します。
func (u *CatalogUsecase) Analyze(ctx context.Context, pdfData []byte) (*entity.Analysis, error) {
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("document data is empty")
	}
	if len(pdfData) > MaxDocumentSize {
		return nil, fmt.Errorf("document size exceeds maximum of %d bytes", MaxDocumentSize)
	}

	if !u.gen.Ready() {
		return &entity.Analysis{Text: PlaceholderNoCredential}, nil
	}

	images, err := u.renderer.RenderPages(pdfData, u.cfg.MaxPages, u.cfg.RenderScale)
	if err != nil {
		return nil, fmt.Errorf("render catalog pages: %w", err)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("document has no renderable pages")
	}

	prompt := AnalysisPrompt
	if ocr := u.extractOCR(ctx, images); ocr != "" {
		prompt = prompt + "\n\n[OCR 추출 텍스트]\n" + ocr
	}

	text, err := u.gen.GenerateWithImages(ctx, prompt, images)
	if err != nil {
		return nil, fmt.Errorf("vision analysis failed: %w", err)
	}
	return &entity.Analysis{Text: text, PageCount: len(images)}, nil
}

// extractOCR は各ページのOCRテキストを連結します。失敗はページ単位で無視されます。
func (u *CatalogUsecase) extractOCR(ctx context.Context, images [][]byte) string {
	if u.extractor == nil {
		return ""
	}

	var sb strings.Builder
	for i, img := range images {
		text, err := u.extractor.ExtractText(ctx, img)
		if err != nil {
			slog.Warn("OCR抽出に失敗", "page", i+1, "error", err)
			continue
		}
		if text == "" {
			continue
		}
		fmt.Fprintf(&sb, "--- page %d ---\n%s\n", i+1, text)
	}
	return strings.TrimSpace(sb.String())
}
