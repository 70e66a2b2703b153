// Package entity はcontentフィーチャーのドメインモデルを定義します。
package entity

// Platform はSNS投稿の配信先プラットフォームです。
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformLinkedIn  Platform = "LinkedIn"
)

// Language は生成物の出力言語です。
type Language string

const (
	LanguageKorean  Language = "Korean"
	LanguageEnglish Language = "English"
)

// Emails は2言語の営業メール本文です。1回のアクションで両方が生成されます。
type Emails struct {
	KR string `json:"kr"`
	EN string `json:"en"`
}

// SNSContent はプラットフォーム×言語の4種のSNS投稿本文です。
type SNSContent struct {
	InstaKR  string `json:"insta_kr"`
	InstaEN  string `json:"insta_en"`
	LinkedKR string `json:"linked_kr"`
	LinkedEN string `json:"linked_en"`
}
