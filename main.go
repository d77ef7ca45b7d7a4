package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"TubeBend/internal/auth"
	"TubeBend/internal/calc/batch"
	"TubeBend/internal/calc/bend"
	"TubeBend/internal/calc/report"
	"TubeBend/internal/calc/xlsx"
	"TubeBend/internal/repo"
)

var wg sync.WaitGroup

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func HandleList(router *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		slog.Error("TOKEN_KEY environment variable is not set")
		os.Exit(1)
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: userRepo, Log: slog.Default()}
	limiter := auth.NewIPRateLimiter(1, 3)

	bendH := &bend.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	xlsxH := &xlsx.Handler{}

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")
	api.HandleFunc("/materials", bendH.Materials).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/tools/bend/calc", bendH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/bend/recommend", bendH.Recommend).Methods("POST")
	secureApi.HandleFunc("/tools/bend/batch", batchH.Bend).Methods("POST")
	secureApi.HandleFunc("/tools/bend/import", xlsxH.Import).Methods("POST")
	secureApi.HandleFunc("/tools/bend/report.pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/bend/report.xlsx", xlsxH.Export).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file, using process environment")
	}

	db := auth.InitDB()
	defer db.Close()

	router := mux.NewRouter()
	HandleList(router, db)
	handler := CORS(router)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8443"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	certFile := os.Getenv("TLS_CERT")
	keyFile := os.Getenv("TLS_KEY")

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting server", "addr", addr, "tls", certFile != "")
		var err error
		if certFile != "" && keyFile != "" {
			err = server.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")

	wg.Wait()
}
