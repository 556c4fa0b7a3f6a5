package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hajzi/admin-console/internal/domain/model"
)

// Stats serves the dashboard headline numbers.
type Stats struct {
	api API
}

// NewStats constructs the stats service.
func NewStats(api API) *Stats {
	return &Stats{api: api}
}

// Dashboard fetches the headline snapshot.
func (s *Stats) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	res, err := s.api.Get(ctx, "/admin/dashboard")
	if err != nil {
		return model.DashboardStats{}, err
	}
	var stats model.DashboardStats
	if err := res.Decode(&stats); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

// Subscriptions fetches the subscription revenue snapshot.
func (s *Stats) Subscriptions(ctx context.Context) (model.SubscriptionStats, error) {
	res, err := s.api.Get(ctx, "/admin/subscriptions/stats")
	if err != nil {
		return model.SubscriptionStats{}, err
	}
	var stats model.SubscriptionStats
	if err := res.Decode(&stats); err != nil {
		return model.SubscriptionStats{}, err
	}
	return stats, nil
}

// Overview fetches both dashboard snapshots in parallel. The first failure
// cancels the other fetch and comes back whole.
func (s *Stats) Overview(ctx context.Context) (model.Overview, error) {
	var overview model.Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.Dashboard(ctx)
		if err != nil {
			return err
		}
		overview.Dashboard = stats
		return nil
	})
	g.Go(func() error {
		stats, err := s.Subscriptions(ctx)
		if err != nil {
			return err
		}
		overview.Subscriptions = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.Overview{}, err
	}
	return overview, nil
}
