// Package docxwriter はドキュメント構造のOOXML（.docx）レンダリングを提供します。
package docxwriter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"marketer_backend/internal/feature/export/usecase"
)

// 見出しサイズ（ハーフポイント単位）。タイトル > H1 > H2 > 本文。
const (
	titleSize = "40"
	h1Size    = "32"
	h2Size    = "26"
)

// Writer はDocumentを.docxバイト列へ変換するDocumentRenderer実装です。
type Writer struct{}

// WriterがDocumentRendererを実装していることをコンパイル時に検証します。
var _ usecase.DocumentRenderer = (*Writer)(nil)

// NewWriter はWriterの新しいインスタンスを生成します。
func NewWriter() *Writer {
	return &Writer{}
}

// Render はタイトル・日付・セクション群を固定階層でレンダリングします。
// ディスクI/Oは行わず、メモリ上のバイト列を返します。
func (w *Writer) Render(doc usecase.Document) ([]byte, error) {
	file := docx.New().WithDefaultTheme()

	file.AddParagraph().AddText(doc.Title).Size(titleSize).Bold()
	file.AddParagraph().AddText(doc.Date)

	for _, sec := range doc.Sections {
		if sec.Heading != "" {
			size := h1Size
			if sec.Level >= 2 {
				size = h2Size
			}
			file.AddParagraph().AddText(sec.Heading).Size(size).Bold()
		}
		if sec.Body == "" {
			continue
		}
		// 本文の改行は段落区切りとして保持する
		for _, line := range strings.Split(sec.Body, "\n") {
			file.AddParagraph().AddText(line)
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("docx: write document: %w", err)
	}
	return buf.Bytes(), nil
}
