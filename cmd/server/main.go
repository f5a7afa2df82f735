// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/leadsegment-backend/internal/controller"
	"github.com/unclebandit/leadsegment-backend/internal/registry"
	"github.com/unclebandit/leadsegment-backend/internal/service"
	"github.com/unclebandit/leadsegment-backend/internal/store"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	reg := registry.New()
	if overlay := os.Getenv("PROFILE_OVERLAY"); overlay != "" {
		if err := reg.LoadOverlay(overlay); err != nil {
			log.Fatalf("failed to load profile overlay: %v", err)
		}
		log.Println("Loaded profile overlay:", overlay)
	}

	segmentationController := &controller.SegmentationController{
		Registry: reg,
		Service:  &service.PipelineService{Registry: reg},
		Runs:     store.NewRunStore(),
	}

	r := chi.NewRouter()
	segmentationController.Routes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
