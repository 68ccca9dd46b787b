package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	auditModel "portfolio-backend/internal/domains/audit/model"
	"portfolio-backend/internal/domains/dashboard/model"
)

// Counter được thoả mãn bởi EntityService của từng entity kind
type Counter interface {
	Count(ctx context.Context) (int, error)
}

type ActivityReader interface {
	Recent(ctx context.Context, n int) ([]auditModel.Entry, error)
}

type ServiceInterface interface {
	Stats(ctx context.Context) (*model.Stats, error)
}

type Counters struct {
	Projects       Counter
	Experience     Counter
	Skills         Counter
	Certifications Counter
}

type service struct {
	counters Counters
	activity ActivityReader
}

func NewService(counters Counters, activity ActivityReader) ServiceInterface {
	return &service{counters: counters, activity: activity}
}

func (s *service) Stats(ctx context.Context) (*model.Stats, error) {
	stats := &model.Stats{}
	g, gctx := errgroup.WithContext(ctx)

	count := func(name string, c Counter, dst *int) {
		g.Go(func() error {
			n, err := c.Count(gctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}
	count("projects", s.counters.Projects, &stats.ProjectsCount)
	count("experience", s.counters.Experience, &stats.ExperienceCount)
	count("skills", s.counters.Skills, &stats.SkillsCount)
	count("certifications", s.counters.Certifications, &stats.CertificationsCount)

	g.Go(func() error {
		entries, err := s.activity.Recent(gctx, model.RecentActivityLimit)
		if err != nil {
			return fmt.Errorf("recent activity: %w", err)
		}
		stats.RecentActivity = entries
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if stats.RecentActivity == nil {
		stats.RecentActivity = []auditModel.Entry{}
	}
	return stats, nil
}
