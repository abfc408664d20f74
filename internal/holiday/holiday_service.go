package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const yearKeyPrefix = "holidays:year:"

func yearKey(year int) string {
	return fmt.Sprintf("%s%d", yearKeyPrefix, year)
}

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	GetByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	SnapshotForRange(ctx context.Context, from, to time.Time) (Provider, error)
}

type service struct {
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (s *service) GetByYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	cacheKey := yearKey(year)

	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached []HolidayResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	// Singleflight keeps concurrent misses from stampeding the DB
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindByYear(ctx, year)
		if err != nil {
			return nil, err
		}

		resp := make([]HolidayResponse, len(rows))
		for i, r := range rows {
			resp[i] = HolidayResponse{
				Date: r.HolidayDate.Format("2006-01-02"),
				Name: r.Name,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]HolidayResponse), nil
}

func (s *service) SnapshotForRange(ctx context.Context, from, to time.Time) (Provider, error) {
	rows, err := s.repo.FindByRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return NewMapProvider(rows), nil
}
