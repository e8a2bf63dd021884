package main

import (
	"log"
	"net/http"
	"os"

	"github.com/genielab/genie/internal/api"
	"github.com/genielab/genie/internal/digest"
	"github.com/genielab/genie/internal/middleware"
	"github.com/genielab/genie/internal/repository"
)

func main() {
	postgresDSN := os.Getenv("POSTGRES_DSN")
	if postgresDSN == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	repo, err := repository.NewPostgresRepository(postgresDSN)
	if err != nil {
		log.Fatal(err)
	}

	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("failed to close Postgres repository: %v", err)
		}
	}()

	var digests *digest.Queue
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		digests, err = digest.NewQueue(redisAddr)
		if err != nil {
			log.Fatal(err)
		}

		defer func() {
			if err := digests.Close(); err != nil {
				log.Printf("failed to close digest queue: %v", err)
			}
		}()

		log.Printf("Connected to Redis at %s", redisAddr)
	} else {
		log.Println("REDIS_ADDR not set, digest scheduling disabled")
	}

	apiHandler := api.NewAPI(repo, digests)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)

	if err := http.ListenAndServe(":"+port, middleware.MetricsMiddleware(apiHandler)); err != nil {
		log.Fatal(err)
	}
}
