package server

import (
	"os"
	"strings"
	"time"

	"anoa.com/bskmtclub/internal/config"
	"anoa.com/bskmtclub/internal/handler"
	"anoa.com/bskmtclub/internal/membership"
	"anoa.com/bskmtclub/internal/middleware"
	"anoa.com/bskmtclub/internal/repository"
	"anoa.com/bskmtclub/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	tenureJob   *service.TenureBonusJob
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	engineCfg := membership.DefaultConfig()
	if cfg.EstimatedEventsPerYear > 0 {
		engineCfg.EstimatedEventsPerYear = cfg.EstimatedEventsPerYear
	}

	userRepo := repository.NewUserRepository(db)
	pointLogRepo := repository.NewPointLogRepository(db)
	eventRepo := repository.NewEventRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	cache := service.NewProgressCache(redisClient, cfg.ProgressCacheTTL)

	pointsSvc := service.NewPointsService(pointLogRepo, userRepo, cache, engineCfg)
	membershipSvc := service.NewMembershipService(
		userRepo, pointLogRepo, eventRepo, engagementRepo, membershipRepo,
		pointsSvc, cache, engineCfg,
	)
	adminSvc := service.NewAdminService(userRepo, eventRepo, engagementRepo, pointsSvc, cache)
	authSvc := service.NewAuthService(userRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	membershipHandler := handler.NewMembershipHandler(membershipSvc)
	leaderboardHandler := handler.NewLeaderboardHandler(pointsSvc)
	adminHandler := handler.NewAdminHandler(adminSvc, membershipSvc)

	tenureJob := service.NewTenureBonusJob(userRepo, pointLogRepo, pointsSvc)
	tenureJob.Start()

	router := gin.New()

	setupCORS(router)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.POST("/members", adminHandler.CreateMember)
			adminGroup.GET("/members", adminHandler.ListMembers)
			adminGroup.POST("/members/:id/tier", adminHandler.ChangeTier)
			adminGroup.POST("/members/:id/disciplinary", adminHandler.AddDisciplinaryRecord)
			adminGroup.POST("/members/:id/volunteering", adminHandler.AddVolunteeringRecord)
			adminGroup.POST("/events", adminHandler.CreateEvent)
			adminGroup.POST("/events/:id/attendance", adminHandler.ConfirmAttendance)
			adminGroup.POST("/leader-applications/:id/review", adminHandler.ReviewLeaderApplication)
		}

		protected.GET("/membership/progress", membershipHandler.GetMyProgress)
		protected.GET("/membership/progress/:id", authMiddleware.RequireAdmin(), membershipHandler.GetMemberProgress)
		protected.PUT("/membership/volunteer", membershipHandler.SetVolunteer)
		protected.POST("/membership/leader-application", membershipHandler.ApplyForLeader)

		protected.POST("/events/:id/attendance", membershipHandler.RecordAttendance)

		protected.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
		tenureJob:   tenureJob,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) Stop() {
	if s.tenureJob != nil {
		s.tenureJob.Stop()
	}
}

func setupCORS(router *gin.Engine) {
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
