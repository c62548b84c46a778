package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/siem-watch/backend/internal/client"
	"github.com/siem-watch/backend/internal/config"
	"github.com/siem-watch/backend/internal/db"
	"github.com/siem-watch/backend/internal/handler"
	"github.com/siem-watch/backend/internal/service"
)

func main() {
	// .env 로드 (파일이 없으면 무시)
	_ = godotenv.Load()

	cfg := config.Load()

	// 스토리지 초기화: 스키마 생성 + 첫 구동 시 샘플 데이터 삽입
	store, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	if err := store.Seed(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Printf("Database initialized: %s", cfg.Database.Path)

	// 클라이언트 / 서비스 / 핸들러 조립
	mailer := client.NewMailer(cfg.SMTP, "http://127.0.0.1:"+cfg.Server.Port)

	eventService := service.NewEventService(store)
	fixtureService := service.NewFixtureService(store, mailer)
	exportService := service.NewExportService(store)

	dashboardHandler := handler.NewDashboardHandler(eventService)
	apiHandler := handler.NewAPIHandler(eventService)
	alertHandler := handler.NewAlertHandler(eventService)
	fixtureHandler := handler.NewFixtureHandler(fixtureService)
	exportHandler := handler.NewExportHandler(exportService)

	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/", dashboardHandler.Dashboard)
	router.GET("/ping", handler.Ping)
	router.POST("/add_test_event", fixtureHandler.AddTestEvent)
	router.GET("/export/excel", exportHandler.ExportExcel)
	router.GET("/export/pdf", exportHandler.ExportPDF)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/events", apiHandler.GetEvents)
		api.GET("/stats", apiHandler.GetStats)
		api.GET("/alerts", apiHandler.GetAlerts)
		api.PATCH("/alerts/:id/status", alertHandler.UpdateStatus)
	}

	log.Printf("Starting SIEM dashboard on http://127.0.0.1:%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		panic(err)
	}
}
