package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go-timeclock/internal/bootstrap"
	"go-timeclock/internal/shared/apperror"
	"go-timeclock/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	overviewCacheKey = "admin:overview"
	overviewCacheTTL = 5 * time.Second
)

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	Overview(ctx context.Context) (OverviewResponse, error)
	Reset(ctx context.Context) (ResetResponse, error)
}

type service struct {
	repo  Repository
	rdb   *redis.Client
	audit bootstrap.AuditLogger
	sf    *singleflight.Group
}

// NewService builds the admin service. rdb may be nil; the overview then
// skips the cache and always counts live.
func NewService(repo Repository, rdb *redis.Client, audit bootstrap.AuditLogger) Service {
	return &service{repo: repo, rdb: rdb, audit: audit, sf: &singleflight.Group{}}
}

// Overview returns the dashboard counters. The admin view polls this, so
// concurrent callers are collapsed through singleflight and the result is
// cached briefly in Redis. A count that fails is logged and reported as 0
// rather than failing the whole call.
func (s *service) Overview(ctx context.Context) (OverviewResponse, error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, overviewCacheKey).Result(); err == nil {
			var cached OverviewResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	v, err, _ := s.sf.Do(overviewCacheKey, func() (interface{}, error) {
		return s.countOverview(ctx), nil
	})
	if err != nil {
		return OverviewResponse{}, err
	}
	resp := v.(OverviewResponse)

	if s.rdb != nil {
		if buf, err := json.Marshal(resp); err == nil {
			s.rdb.Set(ctx, overviewCacheKey, buf, overviewCacheTTL)
		}
	}

	return resp, nil
}

func (s *service) countOverview(ctx context.Context) OverviewResponse {
	logger := contextutil.GetLogger(ctx, zap.L())

	var resp OverviewResponse
	var err error

	if resp.TotalEmployees, err = s.repo.CountEmployees(ctx); err != nil {
		logger.Error("overview: count employees failed", zap.Error(err))
		resp.TotalEmployees = 0
	}
	if resp.ActiveClockIns, err = s.repo.CountOpenEntries(ctx); err != nil {
		logger.Error("overview: count open entries failed", zap.Error(err))
		resp.ActiveClockIns = 0
	}
	if resp.OnLunch, err = s.repo.CountOpenBreaks(ctx); err != nil {
		logger.Error("overview: count open breaks failed", zap.Error(err))
		resp.OnLunch = 0
	}

	dayStart := time.Now().UTC().Truncate(24 * time.Hour)
	if resp.TodayEntries, err = s.repo.CountEntriesSince(ctx, dayStart, dayStart.Add(24*time.Hour)); err != nil {
		logger.Error("overview: count today entries failed", zap.Error(err))
		resp.TodayEntries = 0
	}

	return resp
}

func (s *service) Reset(ctx context.Context) (ResetResponse, error) {
	if err := s.repo.ResetAll(ctx); err != nil {
		return ResetResponse{}, apperror.Wrap(
			err,
			apperror.CodeInternalError,
			"Failed to reset database",
			http.StatusInternalServerError,
		)
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "ADMIN_RESET",
			Message: "All time-tracking data deleted, bootstrap admin re-seeded",
			Meta: map[string]any{
				"request_id": contextutil.GetRequestID(ctx),
			},
		})
	}

	if s.rdb != nil {
		s.rdb.Del(ctx, overviewCacheKey)
	}

	return ResetResponse{Message: "Database reset successfully"}, nil
}
