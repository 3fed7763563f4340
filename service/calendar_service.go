package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"calcdrills/domain"
	"calcdrills/repository"
)

const sundayStartsCacheKey = "calendar:sunday-starts:%d-%d"

// SundayStarts is the cached summary of a century scan.
type SundayStarts struct {
	Count int      `json:"count"`
	Dates []string `json:"dates"`
}

type CalendarService struct {
	cache repository.CacheRepository
	log   *logrus.Logger
}

func NewCalendarService(cache repository.CacheRepository, log *logrus.Logger) *CalendarService {
	return &CalendarService{cache: cache, log: log}
}

// Scan walks the fixed century and keeps a record of every day.
func (s *CalendarService) Scan() domain.ScanResult {
	days := make([]domain.DayRecord, 0, 36524)
	count := ScanCentury(domain.Epoch(), EndYear, func(rec domain.DayRecord) {
		days = append(days, rec)
	})
	return domain.ScanResult{Days: days, SundayCount: count}
}

// SundayStarts returns the months of the century that began on a Sunday.
func (s *CalendarService) SundayStarts(ctx context.Context) (SundayStarts, error) {
	key := fmt.Sprintf(sundayStartsCacheKey, EpochYear, EndYear)

	if s.cache != nil {
		if val, ok := s.cache.Get(ctx, key); ok {
			var cached SundayStarts
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
			s.log.WithField("key", key).Warn("discarding unreadable cache entry")
		}
	}

	result := SundayStarts{Dates: []string{}}
	result.Count = ScanCentury(domain.Epoch(), EndYear, func(rec domain.DayRecord) {
		if rec.MonthStartsOnSunday {
			result.Dates = append(result.Dates, rec.Date.String())
		}
	})
	s.log.WithField("count", result.Count).Debug("century scan finished")

	if s.cache != nil {
		data, err := json.Marshal(result)
		if err != nil {
			return result, fmt.Errorf("encode scan result: %w", err)
		}
		if err := s.cache.Set(ctx, key, string(data)); err != nil {
			s.log.WithError(err).Warn("failed to cache scan result")
		}
	}
	return result, nil
}
