package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"naminara/backend/config"
	"naminara/backend/internal/api/handler"
	"naminara/backend/internal/api/middleware"
	"naminara/backend/internal/model"
	"naminara/backend/pkg/jwt"
)

// Setup Gin 라우터 엔진 초기화
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 헬스 체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 모듈 (인증 불필요)
		auth := v1.Group("/auth")
		{
			auth.GET("/profiles", h.Auth.Profiles)
			auth.POST("/login", h.Auth.Login)
		}

		// 인증 필요 라우트
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr))
		{
			authorized.GET("/auth/me", h.Auth.Me)

			// 관제 대시보드 — 선장은 일지 화면만 쓰므로 제외
			authorized.GET("/dashboard",
				middleware.RoleAuth(model.RoleAdmin, model.RoleChiefEngineer, model.RoleWorker),
				h.Dashboard.Overview)

			// 운항일지 모듈
			logs := authorized.Group("/logs")
			{
				logs.GET("", middleware.RoleAuth(model.RoleAdmin, model.RoleCaptain), h.VoyageLog.ListLogs)
				logs.GET("/live",
					middleware.RoleAuth(model.RoleAdmin, model.RoleChiefEngineer, model.RoleWorker),
					h.VoyageLog.LiveLogs)
				logs.POST("/export", middleware.RoleAuth(model.RoleAdmin), h.Export.ExportLogs)

				// 작성 중 폼 버퍼 — 선장 전용
				logs.PUT("/draft-buffer", middleware.RoleAuth(model.RoleCaptain), h.VoyageLog.SaveDraftBuffer)
				logs.GET("/draft-buffer", middleware.RoleAuth(model.RoleCaptain), h.VoyageLog.GetDraftBuffer)
				logs.DELETE("/draft-buffer", middleware.RoleAuth(model.RoleCaptain), h.VoyageLog.ClearDraftBuffer)

				logs.GET("/:id", middleware.RoleAuth(model.RoleAdmin, model.RoleCaptain), h.VoyageLog.GetLog)
				logs.POST("", middleware.RoleAuth(model.RoleCaptain), h.VoyageLog.CreateLog)
				logs.PUT("/:id", middleware.RoleAuth(model.RoleCaptain, model.RoleAdmin), h.VoyageLog.UpdateLog)
				logs.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.VoyageLog.DeleteLog)
			}

			// 일계표 모듈
			authorized.GET("/reports/daily", middleware.RoleAuth(model.RoleAdmin), h.Report.DailyReport)

			// 선박 모듈 — 목록은 전 역할(일지 작성 폼에 필요), 변경은 관리자
			ships := authorized.Group("/ships")
			{
				ships.GET("", h.Ship.ListShips)
				ships.POST("", middleware.RoleAuth(model.RoleAdmin), h.Ship.CreateShip)
				ships.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Ship.UpdateShip)
				ships.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Ship.DeleteShip)
			}

			// 인력 모듈 — 목록은 전 역할(승무원 선택에 필요), 변경은 관리자
			users := authorized.Group("/users")
			{
				users.GET("", h.User.ListUsers)
				users.POST("", middleware.RoleAuth(model.RoleAdmin), h.User.CreateUser)
				users.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.User.UpdateUser)
				users.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.User.DeleteUser)
			}

			// 알림 모듈 — 관리자 전용
			notifications := authorized.Group("/notifications", middleware.RoleAuth(model.RoleAdmin))
			{
				notifications.GET("/config", h.Notification.GetConfig)
				notifications.PUT("/config", h.Notification.UpdateConfig)
				notifications.POST("/verify", h.Notification.VerifyBot)
				notifications.POST("/test", h.Notification.SendTest)
			}

			// AI 조언 모듈 — 관리자 전용
			authorized.POST("/ai/crew-advice", middleware.RoleAuth(model.RoleAdmin), h.Advice.CrewAdvice)
		}
	}

	return r
}
