package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/internal/store"
	"github.com/checkdaily/checkdaily/models"
)

// checkService is the concrete implementation of CheckService.
// All operations are scoped by the authenticated user's id; ownership is
// enforced at the repository level so a foreign check id behaves exactly
// like a missing one.
type checkService struct {
	checkRepository store.CheckRepository
	logger          *logger.Logger

	// now is injected for tests; defaults to time.Now.
	now func() time.Time
}

// NewCheckService constructs a CheckService backed by the given repository.
func NewCheckService(checkRepository store.CheckRepository, logger *logger.Logger) CheckService {
	return &checkService{
		checkRepository: checkRepository,
		logger:          logger,
		now:             time.Now,
	}
}

// today returns the current calendar day truncated to midnight UTC.
// Day statuses are keyed by this value.
func (s *checkService) today() time.Time {
	return truncateToDay(s.now().UTC())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ListChecks returns every check of the user with computed stats.
func (s *checkService) ListChecks(ctx context.Context, userID int64) ([]models.CheckResponse, error) {
	checks, err := s.checkRepository.FindChecksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing checks failed: %w", err)
	}

	responses := make([]models.CheckResponse, 0, len(checks))
	for _, check := range checks {
		responses = append(responses, s.toResponse(check))
	}

	return responses, nil
}

// GetCheck returns a single check of the user with computed stats, or
// store.ErrCheckNotFound.
func (s *checkService) GetCheck(ctx context.Context, userID int64, checkID string) (models.CheckResponse, error) {
	check, err := s.checkRepository.FindCheckByID(ctx, userID, checkID)
	if err != nil {
		return models.CheckResponse{}, fmt.Errorf("check lookup failed: %w", err)
	}

	return s.toResponse(check), nil
}

// CreateCheck inserts a new check and pre-schedules one unchecked day
// status per requested day, starting today. A negative count is clamped
// to zero.
func (s *checkService) CreateCheck(ctx context.Context, userID int64, req models.CheckCreateRequest) (models.CheckResponse, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		return models.CheckResponse{}, ErrInvalidDataProvided
	}

	count := max(0, req.Count)
	checkID := uuid.NewString()
	today := s.today()

	days := make([]models.DayStatus, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, models.DayStatus{
			ID:      uuid.NewString(),
			CheckID: checkID,
			Date:    today.AddDate(0, 0, i),
		})
	}

	created, err := s.checkRepository.CreateCheck(ctx, models.Check{
		ID:     checkID,
		UserID: userID,
		Name:   req.Name,
		Count:  count,
		Days:   days,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("check creation failed")
		return models.CheckResponse{}, fmt.Errorf("check creation failed: %w", err)
	}

	return s.toResponse(created), nil
}

// UpdateCheck renames a check and/or changes its day count.
//
// Growing the count schedules additional day statuses starting today,
// skipping dates that already have a row. Shrinking removes trailing day
// statuses but keeps every already-checked one, so completed history is
// never lost.
func (s *checkService) UpdateCheck(ctx context.Context, userID int64, checkID string, req models.CheckUpdateRequest) (models.CheckResponse, error) {
	log := logger.FromContext(ctx)

	check, err := s.checkRepository.FindCheckByID(ctx, userID, checkID)
	if err != nil {
		return models.CheckResponse{}, fmt.Errorf("check lookup failed: %w", err)
	}

	patch := models.CheckUpdateRequest{Name: req.Name}

	if req.Count != nil {
		newCount := max(0, *req.Count)
		patch.Count = &newCount

		switch {
		case newCount > check.Count:
			today := s.today()
			existing := make(map[time.Time]struct{}, len(check.Days))
			for _, day := range check.Days {
				existing[truncateToDay(day.Date)] = struct{}{}
			}

			added := make([]models.DayStatus, 0, newCount-check.Count)
			for i := check.Count; i < newCount; i++ {
				date := today.AddDate(0, 0, i)
				if _, ok := existing[date]; ok {
					continue
				}
				added = append(added, models.DayStatus{
					ID:      uuid.NewString(),
					CheckID: check.ID,
					Date:    date,
				})
			}

			if err := s.checkRepository.AddDayStatuses(ctx, added); err != nil {
				log.Err(err).Str("check_id", check.ID).Msg("adding day statuses failed")
				return models.CheckResponse{}, fmt.Errorf("adding day statuses failed: %w", err)
			}

		case newCount < check.Count:
			// Days come back from the repository sorted by date; drop the
			// unchecked tail beyond the new count.
			removed := make([]string, 0)
			for _, day := range check.Days[min(newCount, len(check.Days)):] {
				if !day.IsChecked {
					removed = append(removed, day.ID)
				}
			}

			if err := s.checkRepository.RemoveDayStatuses(ctx, check.ID, removed); err != nil {
				log.Err(err).Str("check_id", check.ID).Msg("removing day statuses failed")
				return models.CheckResponse{}, fmt.Errorf("removing day statuses failed: %w", err)
			}
		}
	}

	if err := s.checkRepository.UpdateCheck(ctx, userID, checkID, patch); err != nil {
		log.Err(err).Str("check_id", checkID).Msg("check update failed")
		return models.CheckResponse{}, fmt.Errorf("check update failed: %w", err)
	}

	updated, err := s.checkRepository.FindCheckByID(ctx, userID, checkID)
	if err != nil {
		return models.CheckResponse{}, fmt.Errorf("check lookup failed: %w", err)
	}

	return s.toResponse(updated), nil
}

// DeleteCheck removes a check and all of its day statuses.
func (s *checkService) DeleteCheck(ctx context.Context, userID int64, checkID string) error {
	if err := s.checkRepository.DeleteCheck(ctx, userID, checkID); err != nil {
		return fmt.Errorf("check deletion failed: %w", err)
	}

	return nil
}

// CheckToday marks today as completed for the given check.
//
// If today already has a scheduled day status it is flagged checked;
// otherwise a new checked row is created, and when today lies past the
// original schedule the check's count grows by one to cover it.
func (s *checkService) CheckToday(ctx context.Context, userID int64, checkID string) (models.CheckResponse, error) {
	log := logger.FromContext(ctx)

	check, err := s.checkRepository.FindCheckByID(ctx, userID, checkID)
	if err != nil {
		return models.CheckResponse{}, fmt.Errorf("check lookup failed: %w", err)
	}

	now := s.now().UTC()
	today := truncateToDay(now)

	var existing *models.DayStatus
	for i := range check.Days {
		if truncateToDay(check.Days[i].Date).Equal(today) {
			existing = &check.Days[i]
			break
		}
	}

	if existing != nil {
		if err := s.checkRepository.MarkDayChecked(ctx, check.ID, existing.ID, now); err != nil {
			log.Err(err).Str("check_id", check.ID).Msg("marking day checked failed")
			return models.CheckResponse{}, fmt.Errorf("marking day checked failed: %w", err)
		}
	} else {
		day := models.DayStatus{
			ID:        uuid.NewString(),
			CheckID:   check.ID,
			Date:      today,
			IsChecked: true,
			CheckedAt: &now,
		}
		if err := s.checkRepository.AddDayStatuses(ctx, []models.DayStatus{day}); err != nil {
			log.Err(err).Str("check_id", check.ID).Msg("adding day status failed")
			return models.CheckResponse{}, fmt.Errorf("adding day status failed: %w", err)
		}

		// Today lies past the original schedule: extend the count to cover it.
		lastScheduled := truncateToDay(check.CreatedAt.UTC()).AddDate(0, 0, check.Count-1)
		if today.After(lastScheduled) {
			newCount := check.Count + 1
			if err := s.checkRepository.UpdateCheck(ctx, userID, checkID, models.CheckUpdateRequest{Count: &newCount}); err != nil {
				log.Err(err).Str("check_id", check.ID).Msg("extending check count failed")
				return models.CheckResponse{}, fmt.Errorf("extending check count failed: %w", err)
			}
		}
	}

	updated, err := s.checkRepository.FindCheckByID(ctx, userID, checkID)
	if err != nil {
		return models.CheckResponse{}, fmt.Errorf("check lookup failed: %w", err)
	}

	return s.toResponse(updated), nil
}

// toResponse enriches a check with the stats the client renders.
func (s *checkService) toResponse(check models.Check) models.CheckResponse {
	passedDays := int(s.today().Sub(truncateToDay(check.CreatedAt.UTC())).Hours() / 24)

	checkedCount := 0
	for _, day := range check.Days {
		if day.IsChecked {
			checkedCount++
		}
	}

	percentage := 0
	if check.Count > 0 {
		percentage = checkedCount * 100 / check.Count
	}

	days := check.Days
	if days == nil {
		days = []models.DayStatus{}
	}

	return models.CheckResponse{
		ID:         check.ID,
		Name:       check.Name,
		Count:      check.Count,
		CreatedAt:  check.CreatedAt,
		PassedDays: passedDays,
		Percentage: percentage,
		Days:       days,
	}
}
