package main

import (
	auth "Girder/internal/auth"
	costc "Girder/internal/calc/cost"
	deflection "Girder/internal/calc/deflection"
	flexure "Girder/internal/calc/flexure"
	loads "Girder/internal/calc/loads"
	beamline "Girder/internal/calc/premium/beamline"
	costopt "Girder/internal/calc/premium/costopt"
	importer "Girder/internal/calc/premium/importer"
	rebar "Girder/internal/calc/premium/rebar"
	report "Girder/internal/calc/report"
	shear "Girder/internal/calc/shear"
	designs "Girder/internal/designs"
	repo "Girder/internal/repo"
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(router *mux.Router, db *sql.DB, logger *zap.Logger) {
	designRepo := repo.NewPostgresDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		logger.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: designRepo, Logger: logger}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	flexureH := &flexure.Handler{}
	shearH := &shear.Handler{}
	costH := &costc.Handler{}
	loadsH := &loads.Handler{}
	deflectionH := &deflection.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/flexure/calc", flexureH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/shear/calc", shearH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/cost/calc", costH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/loads/calc", loadsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/deflection/calc", deflectionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	lineOptimizer := beamline.NewOptimizer(logger)
	costoptH := &costopt.Handler{Logger: logger}
	rebarH := &rebar.Handler{}
	beamlineH := &beamline.Handler{Optimizer: lineOptimizer}
	importerH := &importer.Handler{Optimizer: lineOptimizer}

	secureApi.HandleFunc("/premium/optimize/cost", costoptH.Optimize).Methods("POST")
	secureApi.HandleFunc("/premium/optimize/rebar", rebarH.Suggest).Methods("POST")
	secureApi.HandleFunc("/premium/optimize/arrangement", rebarH.Arrange).Methods("POST")
	secureApi.HandleFunc("/premium/optimize/beamline", beamlineH.Optimize).Methods("POST")
	secureApi.HandleFunc("/premium/import/beamline", importerH.BeamLine).Methods("POST")

	designsH := &designs.Handler{Repo: designRepo}
	secureApi.HandleFunc("/designs", designsH.Save).Methods("POST")
	secureApi.HandleFunc("/designs", designsH.List).Methods("GET")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	router.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	router.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB(logger)
	defer db.Close()

	router := mux.NewRouter()
	HandleList(router, db, logger)
	handler := CORS(router)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	logger.Info("starting server", zap.String("addr", server.Addr))
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")

	wg.Wait()
}
