package digest

import (
	"context"
	"log"
	"time"

	"github.com/genielab/genie/internal/genie"
	"github.com/genielab/genie/internal/metrics"
	"github.com/genielab/genie/internal/repository"
)

type Worker struct {
	id           string
	queue        *Queue
	repo         repository.Repository
	engine       *genie.Engine
	sender       Sender
	stop         chan bool
	pollInterval time.Duration
}

func NewWorker(id string, q *Queue, repo repository.Repository, sender Sender) *Worker {
	return &Worker{
		id:           id,
		queue:        q,
		repo:         repo,
		engine:       genie.NewEngine(),
		sender:       sender,
		stop:         make(chan bool),
		pollInterval: 5 * time.Second,
	}
}

func (w *Worker) SetPollInterval(d time.Duration) {
	w.pollInterval = d
}

func (w *Worker) Start() {
	log.Printf("Digest worker %s started", w.id)

	for {
		select {
		case <-w.stop:
			log.Printf("Digest worker %s stopped", w.id)
			return
		default:
			job, err := w.queue.Dequeue()
			if err != nil || job == nil {
				time.Sleep(w.pollInterval)
				continue
			}

			w.processJob(job)

			if depth, err := w.queue.Depth(); err == nil {
				metrics.UpdateDigestQueueDepth(depth)
			}
		}
	}
}

func (w *Worker) processJob(job *Job) {
	log.Printf("Worker %s processing digest %s for user %s", w.id, job.ID, job.UserID)

	job.Status = JobSending
	if err := w.queue.UpdateJob(job); err != nil {
		log.Printf("Failed to update digest status to sending: %v", err)
	}

	if err := w.sendDigest(job); err != nil {
		job.Attempts++
		if job.Attempts < job.MaxAttempts {
			job.Status = JobPending
			job.ScheduledAt = time.Now().Add(time.Duration(job.Attempts) * 30 * time.Second)
			if err := w.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue digest: %v", err)
			}
			log.Printf("Digest %s failed, will retry (%d/%d)", job.ID, job.Attempts, job.MaxAttempts)
		} else {
			job.Status = JobFailed
			job.Error = err.Error()
			if err := w.queue.UpdateJob(job); err != nil {
				log.Printf("Failed to update failed digest: %v", err)
			}
			metrics.DigestsFailed.Inc()
			log.Printf("Digest %s failed permanently: %v", job.ID, err)
		}
		return
	}

	sentAt := time.Now()
	job.Status = JobSent
	job.SentAt = &sentAt
	if err := w.queue.UpdateJob(job); err != nil {
		log.Printf("Failed to update sent digest: %v", err)
	}
	metrics.DigestsSent.Inc()
	log.Printf("Digest %s sent to %s", job.ID, job.Email)
}

func (w *Worker) sendDigest(job *Job) error {
	ctx := context.Background()

	tasks, err := w.repo.GetTasks(ctx, job.UserID)
	if err != nil {
		return err
	}

	logs, err := w.repo.GetProductivityLogs(ctx, job.UserID)
	if err != nil {
		return err
	}

	rec := w.engine.ComputeRecommendations(tasks, logs)

	return w.sender.Send(job.Email, "Your daily Genie digest", renderDigest(rec))
}

func (w *Worker) Stop() {
	w.stop <- true
}
