package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fixline/lead-assist/internal/ai"
	"github.com/fixline/lead-assist/internal/assist"
	"github.com/fixline/lead-assist/internal/logging"
)

func main() {
	_ = godotenv.Load()

	log := logging.L()
	defer func() { _ = log.Sync() }()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Assist module wiring ---
	provider := ai.NewOpenRouterClient()
	svc := assist.NewService(provider)
	handler := assist.NewHandler(svc)

	assist.RegisterRoutes(r, handler)

	// --- health ---
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	log.Info("listening", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
