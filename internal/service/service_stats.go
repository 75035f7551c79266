package service

import (
	"context"
	"fmt"
	"time"

	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/internal/store"
	"github.com/checkdaily/checkdaily/models"
)

// statsService is the concrete implementation of StatsService.
type statsService struct {
	checkRepository store.CheckRepository
	logger          *logger.Logger
}

// NewStatsService constructs a StatsService backed by the given repository.
func NewStatsService(checkRepository store.CheckRepository, logger *logger.Logger) StatsService {
	return &statsService{
		checkRepository: checkRepository,
		logger:          logger,
	}
}

// YearlyActivity builds the GitHub-style activity heat map for one year:
// for every day of the year, how many checks the user completed. The
// response covers every calendar day, with zero counts filled in.
func (s *statsService) YearlyActivity(ctx context.Context, userID int64, year int) (models.YearActivityResponse, error) {
	log := logger.FromContext(ctx)

	if year < 1970 || year > 2100 {
		return models.YearActivityResponse{}, ErrInvalidYear
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	counts, err := s.checkRepository.CountCheckedPerDay(ctx, userID, from, to)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int("year", year).Msg("activity aggregation failed")
		return models.YearActivityResponse{}, fmt.Errorf("activity aggregation failed: %w", err)
	}

	countsByDate := make(map[string]int, len(counts))
	for _, c := range counts {
		countsByDate[c.Date.UTC().Format(time.DateOnly)] += c.Count
	}

	days := make([]models.YearDayActivity, 0, 366)
	maxCount := 0
	for current := from; current.Before(to); current = current.AddDate(0, 0, 1) {
		date := current.Format(time.DateOnly)
		count := countsByDate[date]
		if count > maxCount {
			maxCount = count
		}
		days = append(days, models.YearDayActivity{
			Date:           date,
			CompletedCount: count,
		})
	}

	return models.YearActivityResponse{
		Year:     year,
		MaxCount: maxCount,
		Days:     days,
	}, nil
}
