package booking

import (
	"context"
	"encoding/json"
	"time"

	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

const availabilityCacheTTL = 60 * time.Second

func availabilityCacheKey(date string) string {
	return "availability:" + date
}

// GetAvailability derives, for every treatment, the slots still open on the
// requested date: the template slot list minus the slots consumed by that
// date's bookings, in template order. The result is a pure function of the
// catalog and the day's ledger entries; booking enumeration order never
// affects it. A short-TTL Redis snapshot fronts the computation and is
// dropped whenever an admission for the date succeeds.
func (svc *DefaultBookingService) GetAvailability(ctx context.Context, date string) ([]models.TreatmentAvailability, error) {
	logger := utils.GetLogger()

	if svc.Cache != nil {
		cached, err := svc.Cache.Get(ctx, availabilityCacheKey(date)).Result()
		if err == nil {
			var view []models.TreatmentAvailability
			if err := json.Unmarshal([]byte(cached), &view); err == nil {
				return view, nil
			}
			logger.Warn("discarding unreadable availability snapshot", zap.String("date", date))
		}
	}

	options, err := svc.TreatmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := svc.Repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	view := make([]models.TreatmentAvailability, 0, len(options))
	for _, opt := range options {
		taken := make(map[string]struct{})
		for _, b := range booked {
			if b.Treatment == opt.Name {
				taken[b.Slot] = struct{}{}
			}
		}
		view = append(view, models.TreatmentAvailability{
			Name:  opt.Name,
			Price: opt.Price,
			Slots: remainingSlots(opt.Slots, taken),
		})
	}

	if svc.Cache != nil {
		if data, err := json.Marshal(view); err == nil {
			if err := svc.Cache.Set(ctx, availabilityCacheKey(date), data, availabilityCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability snapshot", zap.String("date", date), zap.Error(err))
			}
		}
	}

	return view, nil
}

// remainingSlots filters taken slots out of the template, preserving template
// order.
func remainingSlots(template []string, taken map[string]struct{}) []string {
	remaining := make([]string, 0, len(template))
	for _, slot := range template {
		if _, ok := taken[slot]; !ok {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}

// invalidateAvailability drops the cached snapshot for a date after the
// ledger changed. Cache trouble is logged, never surfaced: the snapshot
// expires on its own.
func (svc *DefaultBookingService) invalidateAvailability(ctx context.Context, date string) {
	if svc.Cache == nil {
		return
	}
	if err := svc.Cache.Del(ctx, availabilityCacheKey(date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability snapshot",
			zap.String("date", date), zap.Error(err))
	}
}

// ListTreatmentNames exposes the catalog's treatment names for the
// doctor-roster form.
func (svc *DefaultBookingService) ListTreatmentNames(ctx context.Context) ([]models.TreatmentName, error) {
	return svc.TreatmentRepo.ListNames(ctx)
}
