// Package pdf はPDFページのラスタライズを提供します。
package pdf

import (
	"fmt"
	"log/slog"

	"github.com/gen2brain/go-fitz"

	"marketer_backend/internal/feature/catalog/usecase"
)

// baseDPI はスケール1.0に対応するレンダリング解像度です。
const baseDPI = 72.0

// Renderer はPDFバイト列の先頭ページ群をPNGへ変換するPageRenderer実装です。
type Renderer struct{}

// RendererがPageRendererを実装していることをコンパイル時に検証します。
var _ usecase.PageRenderer = (*Renderer)(nil)

// NewRenderer はRendererの新しいインスタンスを生成します。
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderPages は先頭 maxPages ページを scale 倍の解像度でPNGに変換します。
func (r *Renderer) RenderPages(data []byte, maxPages int, scale float64) ([][]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("pdf: open document: %w", err)
	}
	defer func() {
		if err := doc.Close(); err != nil {
			slog.Warn("PDFドキュメントのクローズに失敗", "error", err)
		}
	}()

	pages := doc.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	images := make([][]byte, 0, pages)
	for i := 0; i < pages; i++ {
		png, err := doc.ImagePNG(i, baseDPI*scale)
		if err != nil {
			return nil, fmt.Errorf("pdf: render page %d: %w", i+1, err)
		}
		images = append(images, png)
	}
	return images, nil
}
