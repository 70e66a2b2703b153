package main

import (
	"context"
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"marketer_backend/internal/app/di"
	"marketer_backend/internal/app/router"
	cataloghandler "marketer_backend/internal/feature/catalog/transport/handler"
	contenthandler "marketer_backend/internal/feature/content/transport/handler"
	contentusecase "marketer_backend/internal/feature/content/usecase"
	"marketer_backend/internal/feature/export/adapters/docxwriter"
	exporthandler "marketer_backend/internal/feature/export/transport/handler"
	exportusecase "marketer_backend/internal/feature/export/usecase"
	markethandler "marketer_backend/internal/feature/market/transport/handler"
	sessionadapters "marketer_backend/internal/feature/session/adapters"
	sessionhandler "marketer_backend/internal/feature/session/transport/handler"
	sessionusecase "marketer_backend/internal/feature/session/usecase"
	platformdb "marketer_backend/internal/platform/db"
	"marketer_backend/internal/platform/gemini"
	platformredis "marketer_backend/internal/platform/redis"
	"marketer_backend/internal/platform/token"
)

func main() {
	ctx := context.Background()

	// db（Redis不在時のフォールバック先）
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to in-memory store.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 生成クライアント（クレデンシャル未設定でも起動は継続する）
	gen, err := gemini.NewClient(ctx, gemini.LoadConfig())
	if err != nil {
		log.Fatal("failed to create generation client: ", err)
	}
	if !gen.Ready() {
		log.Println("[WARN] GEMINI_API_KEY is not set. Generation endpoints will degrade.")
	}

	// SESSION_JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(token.EnvKeySessionSecret) == "" {
		log.Println("[WARN] SESSION_JWT_SECRET is not set. Set a strong secret in production.")
	}

	// KOTRA_SERVICE_KEYは予約済み（現パイプラインでは未使用）
	if os.Getenv("KOTRA_SERVICE_KEY") != "" {
		log.Println("[INFO] KOTRA_SERVICE_KEY is set but not used by the current pipeline.")
	}

	// Repository / Usecase
	stateRepo := di.NewStateRepository(rdb, db)
	tokens := token.NewGenerator(os.Getenv(token.EnvKeySessionSecret), sessionadapters.DefaultSessionTTL)
	sessionUC := sessionusecase.NewSessionUsecase(stateRepo, tokens)
	catalogUC := di.NewCatalogUsecase(ctx, gen)
	marketUC := di.NewMarketUsecase(gen)
	contentUC := contentusecase.NewContentUsecase(gen)
	exportUC := exportusecase.NewExportUsecase(docxwriter.NewWriter())

	// Handler
	sessionH := sessionhandler.NewSessionHandler(sessionUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC, sessionUC)
	marketH := markethandler.NewMarketHandler(marketUC, sessionUC)
	contentH := contenthandler.NewContentHandler(contentUC, sessionUC)
	exportH := exporthandler.NewExportHandler(exportUC, sessionUC)

	// ルータ生成
	r := router.NewRouter(sessionH, catalogH, marketH, contentH, exportH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
