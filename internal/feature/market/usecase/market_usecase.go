// Package usecase は市場インテリジェンス集約のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"marketer_backend/internal/feature/market/domain/entity"
)

const (
	// PlaceholderInsufficient は検索結果が1件も得られなかった場合の産業リポートです。
	// この場合は生成呼び出し自体を行いません。
	PlaceholderInsufficient = "정보 부족"
	// maxResultsPerQuery は検索クエリごとに収集する結果数です。
	maxResultsPerQuery = 2
	// reportTimeout は産業リポート生成呼び出しの上限時間です。
	reportTimeout = 2 * time.Minute
)

// MacroFetcher はマクロ経済指標の取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MacroFetcher interface {
	// FetchIndicator は直近の非null値とその基準年を返します。
	FetchIndicator(ctx context.Context, countryCode, indicatorCode string) (float64, string, error)
}

// Searcher はWeb検索を抽象化します。
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error)
}

// TrendFetcher は検索インタレスト時系列の取得を抽象化します。
type TrendFetcher interface {
	InterestOverTime(ctx context.Context, keyword, geo string) ([]entity.TrendPoint, error)
}

// ReportGenerator は産業リポートの要約生成を抽象化します。
type ReportGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// QueryInputs は集約に必要な入力の射影です。
// CountryCode が空の場合、国コードを要するサブ取得は「未解決」としてスキップされます。
type QueryInputs struct {
	CountryCode string
	CountryName string
	Keyword     string
}

// MarketUsecase は3系統の独立したサブ取得を束ねる集約ユースケースです。
type MarketUsecase struct {
	macro  MacroFetcher
	search Searcher
	trends TrendFetcher
	gen    ReportGenerator
	now    func() time.Time
}

// NewMarketUsecase はMarketUsecaseの新しいインスタンスを生成します。
func NewMarketUsecase(macro MacroFetcher, search Searcher, trends TrendFetcher, gen ReportGenerator) *MarketUsecase {
	return &MarketUsecase{macro: macro, search: search, trends: trends, gen: gen, now: time.Now}
}

// macroResult / reportResult / trendResult はサブ取得ごとの明示的な結果型です。
// 失敗の封じ込めが型として見えるようにし、部分的な束を返さないことを保証します。
type macroResult struct {
	macro map[string]entity.IndicatorValue
}

type reportResult struct {
	report string
}

type trendResult struct {
	trends []entity.TrendPoint
}

// Aggregate は3つのサブ取得を並行実行し、全て完了してから束を返します。
// 個々の失敗はサブ取得内で封じ込められるため、この呼び出し自体は失敗しません。
func (u *MarketUsecase) Aggregate(ctx context.Context, in QueryInputs) entity.MarketData {
	var (
		wg sync.WaitGroup
		mr macroResult
		rr reportResult
		tr trendResult
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		mr = u.fetchMacro(ctx, in.CountryCode)
	}()
	go func() {
		defer wg.Done()
		rr = u.fetchReport(ctx, in.CountryName, in.Keyword)
	}()
	go func() {
		defer wg.Done()
		tr = u.fetchTrends(ctx, in.Keyword, in.CountryCode)
	}()
	wg.Wait()

	return entity.MarketData{
		Macro:  mr.macro,
		Report: rr.report,
		Trends: tr.trends,
	}
}

// fetchMacro は6指標を取得します。指標単位で失敗を封じ込め、
// 失敗した指標のみ {"N/A", "-"} とします。
func (u *MarketUsecase) fetchMacro(ctx context.Context, countryCode string) macroResult {
	out := make(map[string]entity.IndicatorValue, len(entity.Indicators))
	for _, ind := range entity.Indicators {
		if countryCode == "" {
			out[ind.Name] = entity.IndicatorValue{Value: "N/A", Year: "-"}
			continue
		}

		value, year, err := u.macro.FetchIndicator(ctx, countryCode, ind.Code)
		if err != nil {
			slog.Warn("지표 조회 실패", "indicator", ind.Code, "country", countryCode, "error", err)
			out[ind.Name] = entity.IndicatorValue{Value: "N/A", Year: "-"}
			continue
		}
		out[ind.Name] = entity.IndicatorValue{Value: formatIndicator(ind.Family, value), Year: year}
	}
	return macroResult{macro: out}
}

// fetchReport は国×キーワードの検索結果を収集し、産業リポートへ要約します。
// 検索結果が全く無い場合は生成を呼ばず固定プレースホルダを返します。
func (u *MarketUsecase) fetchReport(ctx context.Context, countryName, keyword string) reportResult {
	queries := []string{
		fmt.Sprintf("%s %s market size 2025", countryName, keyword),
		fmt.Sprintf("%s %s trends", countryName, keyword),
		fmt.Sprintf("top %s companies in %s", keyword, countryName),
	}

	var sb strings.Builder
	for _, q := range queries {
		results, err := u.search.Search(ctx, q, maxResultsPerQuery)
		if err != nil {
			slog.Warn("웹 검색 실패", "query", q, "error", err)
			continue
		}
		for _, r := range results {
			fmt.Fprintf(&sb, "- %s: %s\n", r.Title, r.Snippet)
		}
	}

	if sb.Len() == 0 {
		return reportResult{report: PlaceholderInsufficient}
	}

	prompt := fmt.Sprintf("'%s %s 시장 리포트' 작성. 기준 연도 명시. 작성일: %s. [정보] %s",
		countryName, keyword, u.now().Format("2006-01-02"), sb.String())

	genCtx, cancel := context.WithTimeout(ctx, reportTimeout)
	defer cancel()

	report, err := u.gen.GenerateText(genCtx, prompt)
	if err != nil {
		slog.Error("산업 리포트 생성 실패", "error", err)
		return reportResult{report: ""}
	}
	return reportResult{report: report}
}

// fetchTrends は直近12ヶ月の検索インタレスト時系列を取得します。
// 失敗時は空の系列を返します。
func (u *MarketUsecase) fetchTrends(ctx context.Context, keyword, countryCode string) trendResult {
	if countryCode == "" {
		return trendResult{trends: []entity.TrendPoint{}}
	}

	points, err := u.trends.InterestOverTime(ctx, keyword, countryCode)
	if err != nil {
		slog.Warn("트렌드 조회 실패", "keyword", keyword, "geo", countryCode, "error", err)
		return trendResult{trends: []entity.TrendPoint{}}
	}
	if points == nil {
		points = []entity.TrendPoint{}
	}
	return trendResult{trends: points}
}

// formatIndicator は指標系列ごとの表示フォーマットを適用します。
func formatIndicator(family string, value float64) string {
	switch family {
	case entity.FamilyCurrencyBillions:
		return fmt.Sprintf("$%.1f B", value/1e9)
	case entity.FamilyMillions:
		return fmt.Sprintf("%.1f M", value/1e6)
	case entity.FamilyCurrency:
		return "$" + groupThousands(int64(math.Round(value)))
	default:
		return fmt.Sprintf("%.1f%%", value)
	}
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
