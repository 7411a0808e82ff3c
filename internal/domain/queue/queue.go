package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrQueueNotFound = errors.New("queue not found")

// Queue is a named pool of tickets; names are unique and matched exactly.
type Queue struct {
	id          uint
	name        string
	description string
}

func NewQueue(name, description string) (*Queue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("queue name is required")
	}
	return &Queue{name: name, description: description}, nil
}

func ReconstructQueue(id uint, name, description string) *Queue {
	return &Queue{id: id, name: name, description: description}
}

func (q *Queue) ID() uint            { return q.id }
func (q *Queue) Name() string        { return q.name }
func (q *Queue) Description() string { return q.description }

func (q *Queue) SetID(id uint) error {
	if q.id != 0 {
		return fmt.Errorf("queue ID is already set")
	}
	q.id = id
	return nil
}

// Stats summarises the unfinished work in a queue.
type Stats struct {
	QueueID         uint
	OpenCount       int64
	OldestCreatedAt *time.Time
}

type Repository interface {
	Create(ctx context.Context, q *Queue) error
	GetByID(ctx context.Context, id uint) (*Queue, error)
	// FindByName does an exact, case-sensitive lookup; (nil, nil) on miss.
	FindByName(ctx context.Context, name string) (*Queue, error)
	List(ctx context.Context) ([]*Queue, error)
	Count(ctx context.Context) (int64, error)
	// Stats counts tickets in the queue that are not closed.
	Stats(ctx context.Context, id uint) (*Stats, error)
}
