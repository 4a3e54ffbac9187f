package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/rosterd/internal/authorization"
	branchdomain "github.com/smallbiznis/rosterd/internal/branch/domain"
	"github.com/smallbiznis/rosterd/internal/config"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	"github.com/smallbiznis/rosterd/internal/identity"
	notificationdomain "github.com/smallbiznis/rosterd/internal/notification/domain"
	preferencedomain "github.com/smallbiznis/rosterd/internal/preference/domain"
	"github.com/smallbiznis/rosterd/internal/ratelimit"
	rosterdomain "github.com/smallbiznis/rosterd/internal/roster/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	return NewEngine(log, metrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	log             *zap.Logger
	genID           *snowflake.Node
	verifier        identity.Verifier
	authzSvc        authorization.Service
	submitLimiter   *ratelimit.SubmissionLimiter
	branchSvc       branchdomain.Service
	employeeSvc     employeedomain.Service
	rosterSvc       rosterdomain.Service
	notificationSvc notificationdomain.Service
	preferenceSvc   preferencedomain.Service
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	Log             *zap.Logger
	GenID           *snowflake.Node
	Verifier        identity.Verifier
	AuthzSvc        authorization.Service
	SubmitLimiter   *ratelimit.SubmissionLimiter
	BranchSvc       branchdomain.Service
	EmployeeSvc     employeedomain.Service
	RosterSvc       rosterdomain.Service
	NotificationSvc notificationdomain.Service
	PreferenceSvc   preferencedomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		log:             p.Log.Named("http.server"),
		genID:           p.GenID,
		verifier:        p.Verifier,
		authzSvc:        p.AuthzSvc,
		submitLimiter:   p.SubmitLimiter,
		branchSvc:       p.BranchSvc,
		employeeSvc:     p.EmployeeSvc,
		rosterSvc:       p.RosterSvc,
		notificationSvc: p.NotificationSvc,
		preferenceSvc:   p.PreferenceSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")
	api.Use(s.AuthRequired())

	// -------- Schedules --------
	api.POST("/schedules", s.authorize(authorization.ObjectRoster, authorization.ActionWrite), s.CreateSchedule)
	api.PUT("/schedules", s.authorize(authorization.ObjectRoster, authorization.ActionWrite), s.SaveSchedule)
	api.POST("/schedules/update", s.authorize(authorization.ObjectRoster, authorization.ActionWrite), s.BulkUpdateSchedule)
	api.GET("/schedules/:branchId/weeks", s.authorize(authorization.ObjectRoster, authorization.ActionRead), s.ListScheduleWeeks)
	api.DELETE("/schedules/:branchId/weeks/:week", s.authorize(authorization.ObjectRoster, authorization.ActionWrite), s.DeleteScheduleWeek)
	api.GET("/schedules/:branchId/:status", s.authorize(authorization.ObjectRoster, authorization.ActionRead), s.GetRoster)

	// -------- Branches / Rooms --------
	api.GET("/branches", s.authorize(authorization.ObjectBranch, authorization.ActionRead), s.ListBranches)
	api.POST("/branches", s.authorize(authorization.ObjectBranch, authorization.ActionWrite), s.CreateBranch)
	api.GET("/branches/:branchId/rooms", s.authorize(authorization.ObjectBranch, authorization.ActionRead), s.ListRooms)
	api.POST("/rooms", s.authorize(authorization.ObjectBranch, authorization.ActionWrite), s.CreateRoom)

	// -------- Employees --------
	api.GET("/employees", s.authorize(authorization.ObjectEmployee, authorization.ActionRead), s.ListEmployees)
	api.POST("/employees", s.authorize(authorization.ObjectEmployee, authorization.ActionWrite), s.CreateEmployee)
	api.PATCH("/employees/:id", s.authorize(authorization.ObjectEmployee, authorization.ActionWrite), s.UpdateEmployee)
	api.DELETE("/employees/:id", s.authorize(authorization.ObjectEmployee, authorization.ActionWrite), s.DeleteEmployee)

	// -------- Notifications --------
	api.GET("/notifications", s.authorize(authorization.ObjectNotification, authorization.ActionRead), s.ListMyNotifications)
	api.POST("/notifications/:id/read", s.authorize(authorization.ObjectNotification, authorization.ActionWrite), s.MarkNotificationRead)
	api.GET("/notifications/admin/:branchId", s.requireAdmin(), s.ListBranchNotifications)

	// -------- Preferences --------
	api.POST("/preferences", s.authorize(authorization.ObjectPreference, authorization.ActionWrite), s.SubmitPreference)
	api.GET("/preferences", s.authorize(authorization.ObjectPreference, authorization.ActionRead), s.ListPreferences)
	api.POST("/preferences/:id/review", s.requireAdmin(), s.ReviewPreference)
}
