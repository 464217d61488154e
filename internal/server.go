package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/bfit-app/bfit-backend/internal/account"
	"github.com/bfit-app/bfit-backend/internal/auth"
	"github.com/bfit-app/bfit-backend/internal/catalog"
	"github.com/bfit-app/bfit-backend/internal/coach"
	"github.com/bfit-app/bfit-backend/internal/config"
	"github.com/bfit-app/bfit-backend/internal/db"
	"github.com/bfit-app/bfit-backend/internal/fitness"
	"github.com/bfit-app/bfit-backend/internal/fitness/fitnessmcp"
	"github.com/bfit-app/bfit-backend/internal/middleware"
	"github.com/bfit-app/bfit-backend/internal/notifications"
	"github.com/bfit-app/bfit-backend/internal/telemetry/metrics"
	metricsmiddleware "github.com/bfit-app/bfit-backend/internal/telemetry/metrics/middleware"
	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mobileAppSecret   string // used with the BFit mobile app
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	coachClient *coach.Client
	notifier    *notifications.Notifier
	prefs       *notifications.Prefs
	reminder    *notifications.Reminder

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	GeminiAPIKey            string
	MobileAppSecret         string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewPool(ctx, db.PoolParams{
		Host:           params.Config.PostgresHost,
		Port:           params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "bfit_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "bfit", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "bfit-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	var pushURL string
	if params.Config.NtfyTopic != "" {
		pushURL = fmt.Sprintf("%s/%s", params.Config.NtfyBaseURL, params.Config.NtfyTopic)
	}
	notifier := notifications.NewNotifier(pushURL, tracedHttpClient, metricsManager)
	prefs := notifications.NewPrefs(rdb)

	s := &Server{
		config:          params.Config,
		dbPool:          dbPool,
		mobileAppSecret: params.MobileAppSecret,
		versionInfo:     params.VersionInfo,

		coachClient: coach.NewClient(
			params.Config.GeminiBaseURL,
			params.GeminiAPIKey,
			params.Config.GeminiModel,
			tracedHttpClient,
		),
		notifier: notifier,
		prefs:    prefs,
		reminder: notifications.NewReminder(
			prefs,
			notifier,
			fitness.NewRepo(dbPool),
			rdb,
		),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	fitnessRepo := fitness.NewRepo(s.dbPool)
	fitnessHandler := fitness.NewHandler(fitnessRepo, s.notifier, s.metricsManager)
	r.HandleFunc("/fitness/sessions", fitnessHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-session")
	r.HandleFunc("/fitness/sessions", fitnessHandler.HandleListAll).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/fitness/sessions/page/{page}/size/{size}", fitnessHandler.HandleList).Methods("GET", "OPTIONS").Name("page-sessions")
	r.HandleFunc("/fitness/sessions/{id}", fitnessHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/fitness/sessions/{id}", fitnessHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-session")
	r.HandleFunc("/fitness/sessions/{id}", fitnessHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-session")

	statsHandler := fitness.NewStatsHandler(fitnessRepo)
	r.HandleFunc("/fitness/stats/streak", statsHandler.HandleStreak).Methods("GET", "OPTIONS").Name("stats-streak")
	r.HandleFunc("/fitness/stats/weekly", statsHandler.HandleWeekly).Methods("GET", "OPTIONS").Name("stats-weekly")
	r.HandleFunc("/fitness/stats/trends", statsHandler.HandleTrends).Methods("GET", "OPTIONS").Name("stats-trends")
	r.HandleFunc("/fitness/stats/alerts", statsHandler.HandleAlerts).Methods("GET", "OPTIONS").Name("stats-alerts")
	r.HandleFunc("/fitness/stats/report", statsHandler.HandleReport).Methods("GET", "OPTIONS").Name("stats-report")
	r.HandleFunc("/fitness/suggest", statsHandler.HandleSuggest).Methods("GET", "OPTIONS").Name("suggest-load")

	catalogHandler := catalog.NewHandler()
	r.HandleFunc("/catalog/groups", catalogHandler.HandleGroups).Methods("GET", "OPTIONS").Name("catalog-groups")
	r.HandleFunc("/catalog/exercises", catalogHandler.HandleExercises).Methods("GET", "OPTIONS").Name("catalog-exercises")
	r.HandleFunc("/catalog/programs", catalogHandler.HandlePrograms).Methods("GET", "OPTIONS").Name("catalog-programs")
	r.HandleFunc("/catalog/programs/{id}", catalogHandler.HandleProgram).Methods("GET", "OPTIONS").Name("catalog-program")
	r.HandleFunc("/catalog/programs/{id}/days/{dayId}/preset", catalogHandler.HandlePreset).Methods("GET", "OPTIONS").Name("catalog-preset")

	coachService := coach.NewService(
		coach.NewRepo(s.dbPool),
		s.coachClient,
		fitnessRepo,
	)
	coachHandler := coach.NewHandler(coachService, s.metricsManager)
	r.HandleFunc("/coach/message", coachHandler.HandleSendMessage).Methods("POST", "OPTIONS").Name("coach-message")
	r.HandleFunc("/coach/threads", coachHandler.HandleThreads).Methods("GET", "OPTIONS").Name("coach-threads")
	r.HandleFunc("/coach/threads/{id}/messages", coachHandler.HandleThreadMessages).Methods("GET", "OPTIONS").Name("coach-messages")
	r.HandleFunc("/coach/threads/{id}/name", coachHandler.HandleRenameThread).Methods("PUT", "OPTIONS").Name("coach-rename")
	r.HandleFunc("/coach/threads/{id}", coachHandler.HandleDeleteThread).Methods("DELETE", "OPTIONS").Name("coach-delete")
	r.HandleFunc("/coach/insights", coachHandler.HandleInsights).Methods("GET", "OPTIONS").Name("coach-insights")

	settingsHandler := notifications.NewHandler(s.prefs)
	r.HandleFunc("/settings/reminder", settingsHandler.HandleGetReminder).Methods("GET", "OPTIONS").Name("get-reminder")
	r.HandleFunc("/settings/reminder", settingsHandler.HandleSetReminder).Methods("PUT", "OPTIONS").Name("set-reminder")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	accountHandler := account.NewHandler(s.versionInfo, s.authService)
	accountHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	// the fitness MCP server, same tools as cmd/fitness_mcp, over HTTP
	mcpServer := fitnessmcp.NewServer(fitnessRepo)
	r.PathPrefix("/mcp").Handler(mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server {
			return mcpServer
		}, nil,
	))

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mobileAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	if s.config.ReminderEnabled {
		go s.reminder.Run(ctx)
	} else {
		log.Debugln("daily training reminder disabled")
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var shutdownErr error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("http server: %w", err))
	}
	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("metrics http server: %w", err))
	}
	if shutdownErr != nil {
		log.Errorf(" >>> failed to gracefully shutdown: %s", shutdownErr)
		return
	}
	log.Warnln("server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
