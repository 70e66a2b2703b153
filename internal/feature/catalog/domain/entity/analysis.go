// Package entity はcatalogフィーチャーのドメインエンティティを定義します。
package entity

// Analysis はカタログ精密分析の結果です。
type Analysis struct {
	// Text は生成された分析レポート本文です。
	Text string
	// PageCount は分析に使用したページ数です。
	PageCount int
}
