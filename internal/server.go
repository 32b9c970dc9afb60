package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/peakform/peakformcom/internal/auth"
	"github.com/peakform/peakformcom/internal/config"
	"github.com/peakform/peakformcom/internal/db"
	"github.com/peakform/peakformcom/internal/middleware"
	"github.com/peakform/peakformcom/internal/misc"
	"github.com/peakform/peakformcom/internal/payments"
	"github.com/peakform/peakformcom/internal/profile"
	"github.com/peakform/peakformcom/internal/programs"
	"github.com/peakform/peakformcom/internal/progress"
	"github.com/peakform/peakformcom/internal/questions"
	"github.com/peakform/peakformcom/internal/recipes"
	"github.com/peakform/peakformcom/internal/telemetry/metrics"
	"github.com/peakform/peakformcom/internal/telemetry/tracing"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	clientAppSecret   string // used by the client mobile app for progress endpoints
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

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
	ClientAppSecret         string
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
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
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
		map[string]string{"db_name": "peakform_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

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

	authService := auth.NewService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "main-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:          params.Config,
		dbPool:          dbPool,
		clientAppSecret: params.ClientAppSecret,
		versionInfo:     params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	profileRepo := profile.NewRepo(s.dbPool)
	profileHandler := profile.NewHandler(profileRepo)
	r.HandleFunc("/clients", profileHandler.HandleListClients).Methods("GET", "OPTIONS").Name("list-clients")
	r.HandleFunc("/profile/{clientID}", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile/{clientID}", profileHandler.HandleUpdate).Methods("POST", "OPTIONS").Name("update-profile")

	progressRepo := progress.NewRepo(s.dbPool)
	progressAnalyzer := progress.NewAnalyzer(
		progressRepo,
		profileRepo,
		s.config.OverviewCacheTTLSeconds,
		s.metricsManager,
	)
	progressHandler := progress.NewHandler(progressRepo, progressAnalyzer, s.metricsManager)
	r.HandleFunc("/progress/{clientID}/measurements", progressHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-measurement")
	r.HandleFunc("/progress/{clientID}/measurements/list/page/{page}/size/{size}", progressHandler.HandleList).Methods("GET", "OPTIONS").Name("list-measurements")
	r.HandleFunc("/progress/{clientID}/measurements/{id}", progressHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-measurement")
	r.HandleFunc("/progress/{clientID}/measurements/{id}", progressHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-measurement")
	r.HandleFunc("/progress/{clientID}/overview", progressHandler.HandleOverview).Methods("GET", "OPTIONS").Name("get-overview")

	recipesHandler := recipes.NewHandler(recipes.NewRepo(s.dbPool))
	r.HandleFunc("/recipes", recipesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-recipe")
	r.HandleFunc("/recipes", recipesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-recipe")
	r.HandleFunc("/recipes/page/{page}/size/{size}", recipesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-recipes")
	r.HandleFunc("/recipes/{id}", recipesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-recipe")
	r.HandleFunc("/recipes/{id}", recipesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-recipe")

	programsHandler := programs.NewHandler(programs.NewRepo(s.dbPool))
	r.HandleFunc("/programs", programsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-program")
	r.HandleFunc("/programs", programsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-program")
	r.HandleFunc("/programs", programsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-programs")
	r.HandleFunc("/programs/{id}", programsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-program")
	r.HandleFunc("/programs/{id}", programsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-program")

	questionsHandler := questions.NewHandler(questions.NewRepo(s.dbPool), s.metricsManager)
	r.HandleFunc("/questions/client/{clientID}", questionsHandler.HandleAsk).Methods("POST", "OPTIONS").Name("ask-question")
	r.HandleFunc("/questions", questionsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-questions")
	r.HandleFunc("/questions/{id}/answer", questionsHandler.HandleAnswer).Methods("POST", "OPTIONS").Name("answer-question")
	r.HandleFunc("/questions/{id}", questionsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-question")

	paymentsHandler := payments.NewHandler(payments.NewRepo(s.dbPool))
	r.HandleFunc("/payments/paytr", paymentsHandler.HandleGetPaytrSettings).Methods("GET", "OPTIONS").Name("get-paytr")
	r.HandleFunc("/payments/paytr", paymentsHandler.HandleSavePaytrSettings).Methods("POST", "OPTIONS").Name("save-paytr")
	r.HandleFunc("/payments/bankaccounts", paymentsHandler.HandleAddBankAccount).Methods("POST", "OPTIONS").Name("new-bank-account")
	r.HandleFunc("/payments/bankaccounts", paymentsHandler.HandleListBankAccounts).Methods("GET", "OPTIONS").Name("list-bank-accounts")
	r.HandleFunc("/payments/bankaccounts/{id}", paymentsHandler.HandleDeleteBankAccount).Methods("DELETE", "OPTIONS").Name("delete-bank-account")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.clientAppSecret,
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
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
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

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
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
