package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"naminara/backend/config"
	"naminara/backend/internal/api/handler"
	"naminara/backend/internal/api/router"
	"naminara/backend/internal/repository"
	"naminara/backend/internal/seed"
	"naminara/backend/internal/service"
	"naminara/backend/pkg/database"
	"naminara/backend/pkg/jwt"
	applogger "naminara/backend/pkg/logger"
	"naminara/backend/pkg/ollama"
	"naminara/backend/pkg/redis"
	"naminara/backend/pkg/telegram"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로거 초기화
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("나미나라 MMS 서버 시작 중...",
		zap.Int("port", cfg.Server.Port),
		zap.String("timezone", cfg.Server.Timezone),
		zap.String("log_level", cfg.Log.Level),
	)

	// 2.1 운항 날짜 경계 판정용 타임존
	loc, err := cfg.Server.Location()
	if err != nil {
		logger.Fatal("타임존 로드 실패", zap.Error(err))
	}

	// 3. 데이터베이스 연결
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("데이터베이스 연결 실패", zap.Error(err))
	}
	logger.Info("데이터베이스 연결 성공")

	// 3.1 마이그레이션 실행
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("sql.DB 획득 실패", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("데이터베이스 마이그레이션 실패", zap.Error(err))
	}

	// 4. Redis 연결 (선택: 실패 시 임시 폼 버퍼만 비활성, 기동은 계속)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 연결 실패 — 작성 중 폼 버퍼 기능이 비활성됩니다", zap.Error(err))
		rdb = nil
	}

	// 5. JWT 관리자 초기화
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. 텔레그램 발송기 — 토큰은 요청 시점에 설정 테이블에서 읽으므로 여기선 무상태
	sender := telegram.NewBotSender()

	// 7. Ollama 클라이언트 (선택: 비활성 설정이면 생성하지 않는다)
	var ai *ollama.Client
	if cfg.AI.Enabled {
		ai, err = ollama.NewClient(&cfg.AI)
		if err != nil {
			logger.Warn("Ollama 초기화 실패 — AI 조언 기능이 비활성됩니다", zap.Error(err))
			ai = nil
		}
	}

	// 8. 의존성 주입: Repository → Service → Handler
	repo := repository.NewRepository(db)

	// 8.1 초기 데이터 적재 (빈 테이블에만)
	if err := seed.Run(repo, logger); err != nil {
		logger.Fatal("초기 데이터 적재 실패", zap.Error(err))
	}

	svc := service.NewService(cfg, repo, jwtMgr, rdb, sender, ai, loc, logger)
	h := handler.NewHandler(svc)

	// 9. 라우터 초기화
	engine := router.Setup(cfg, h, jwtMgr, logger)

	// 10. HTTP 서버 기동 (우아한 종료)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 서버 기동", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 서버 이상 종료", zap.Error(err))
		}
	}()

	// 11. 시스템 신호 대기, 우아한 종료
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("종료 신호 수신, 우아한 종료 시작...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("서버 종료 이상", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("서버가 정상 종료되었습니다")
}
