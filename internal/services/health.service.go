package services

import (
	"context"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	db Pinger
}

func NewHealthService(db Pinger) *HealthService {
	return &HealthService{db: db}
}

// Get reports whether the store answers within a second.
func (s *HealthService) Get(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return s.db.Ping(ctx)
}
