package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genielab/genie/internal/digest"
	"github.com/genielab/genie/internal/repository"
)

func main() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	postgresDSN := os.Getenv("POSTGRES_DSN")
	if postgresDSN == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Fatal("SENDGRID_API_KEY is required")
	}

	fromName := os.Getenv("DIGEST_FROM_NAME")
	if fromName == "" {
		fromName = "Genie"
	}

	fromAddress := os.Getenv("DIGEST_FROM_ADDRESS")
	if fromAddress == "" {
		log.Fatal("DIGEST_FROM_ADDRESS is required")
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

	q, err := digest.NewQueue(redisAddr)
	if err != nil {
		log.Fatal(err)
	}

	defer func() {
		if err := q.Close(); err != nil {
			log.Printf("failed to close digest queue: %v", err)
		}
	}()

	workerID := os.Getenv("WORKER_ID")
	if workerID == "" {
		workerID = fmt.Sprintf("digest-worker-%d", time.Now().Unix())
	}

	sender := digest.NewSendGridSender(apiKey, fromName, fromAddress)
	w := digest.NewWorker(workerID, q, repo, sender)

	go w.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down digest worker...")
	w.Stop()
}
