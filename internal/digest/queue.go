package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	jobsKey  = "digest_jobs"
	queueKey = "digest_queue"
)

type Queue struct {
	client *redis.Client
	ctx    context.Context
}

func NewQueue(redisAddr string) (*Queue, error) {
	client := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Queue{
		client: client,
		ctx:    ctx,
	}, nil
}

func (q *Queue) Enqueue(job *Job) error {
	jobJSON, err := job.ToJSON()
	if err != nil {
		return err
	}

	if err := q.client.HSet(q.ctx, jobsKey, job.ID, jobJSON).Err(); err != nil {
		return err
	}

	return q.client.ZAdd(q.ctx, queueKey, redis.Z{
		Score:  float64(job.ScheduledAt.Unix()),
		Member: job.ID,
	}).Err()
}

// Dequeue returns the next due job, or nil when nothing is scheduled yet.
func (q *Queue) Dequeue() (*Job, error) {
	now := time.Now().Unix()

	results, err := q.client.ZRangeByScore(q.ctx, queueKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   fmt.Sprintf("%d", now),
		Count: 1,
	}).Result()

	if err != nil || len(results) == 0 {
		return nil, err
	}

	jobID := results[0]

	q.client.ZRem(q.ctx, queueKey, jobID)

	jobJSON, err := q.client.HGet(q.ctx, jobsKey, jobID).Result()
	if err != nil {
		return nil, err
	}

	return JobFromJSON(jobJSON)
}

func (q *Queue) UpdateJob(job *Job) error {
	jobJSON, err := job.ToJSON()
	if err != nil {
		return err
	}
	return q.client.HSet(q.ctx, jobsKey, job.ID, jobJSON).Err()
}

func (q *Queue) GetJob(jobID string) (*Job, error) {
	jobJSON, err := q.client.HGet(q.ctx, jobsKey, jobID).Result()
	if err != nil {
		return nil, err
	}
	return JobFromJSON(jobJSON)
}

func (q *Queue) GetAllJobs() ([]*Job, error) {
	jobMap, err := q.client.HGetAll(q.ctx, jobsKey).Result()
	if err != nil {
		return nil, err
	}

	jobs := make([]*Job, 0, len(jobMap))
	for _, jobJSON := range jobMap {
		job, err := JobFromJSON(jobJSON)
		if err != nil {
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// Depth counts jobs still waiting in the schedule.
func (q *Queue) Depth() (int, error) {
	n, err := q.client.ZCard(q.ctx, queueKey).Result()
	return int(n), err
}

func (q *Queue) Close() error {
	return q.client.Close()
}
