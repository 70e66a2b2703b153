package di

import (
	"context"
	"log/slog"
	"os"

	"marketer_backend/internal/feature/catalog/adapters/ocr"
	"marketer_backend/internal/feature/catalog/adapters/pdf"
	"marketer_backend/internal/feature/catalog/usecase"
)

// NewCatalogUsecase はカタログ分析の依存を組み立てます。
// Cloud VisionのOCR補完はADCクレデンシャルがある場合のみ有効になります。
func NewCatalogUsecase(ctx context.Context, gen usecase.VisionGenerator) *usecase.CatalogUsecase {
	var extractor usecase.TextExtractor
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" {
		v, err := ocr.NewVisionTextExtractor(ctx)
		if err != nil {
			slog.Warn("Vision OCRクライアントの初期化に失敗。OCR補完なしで続行", "error", err)
		} else {
			extractor = v
		}
	}
	return usecase.NewCatalogUsecase(usecase.LoadConfig(), pdf.NewRenderer(), gen, extractor)
}
