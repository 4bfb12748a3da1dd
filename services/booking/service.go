package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"yogasund/models"
	"yogasund/utils"

	"go.uber.org/zap"
)

const scheduleCachePrefix = "schedule:"

// GetSchedule returns the sessions in [start, end). Anonymous reads are
// served from a short-lived Redis cache; member-scoped reads (contactID set,
// spots reflect the member's own bookings) always go to braincore.
func (s *DefaultBookingService) GetSchedule(ctx context.Context, start, end time.Time, contactID string) ([]models.ScheduleSession, error) {
	cacheKey := scheduleCachePrefix + start.Format("2006-01-02") + ":" + end.Format("2006-01-02")
	cacheClient := utils.GetCacheClient()

	if contactID == "" {
		if data, err := cacheClient.Get(ctx, cacheKey).Result(); err == nil {
			var cached []models.ScheduleSession
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	sessions, err := s.Client.FetchSessionsInRange(ctx, nil, start, end, contactID)
	if err != nil {
		return nil, err
	}

	if contactID == "" {
		if data, err := json.Marshal(sessions); err == nil {
			if err := cacheClient.Set(ctx, cacheKey, data, utils.ScheduleCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache schedule snapshot", zap.Error(err))
			}
		}
	}
	return sessions, nil
}

// GetBookingOptions resolves eligibility and pricing for one session.
func (s *DefaultBookingService) GetBookingOptions(ctx context.Context, sessionID, contactID, locale string) ([]models.BookingOption, error) {
	return s.Client.GetBookingOptions(ctx, sessionID, contactID, locale)
}

// CreateBooking books a single session. Guest bookings must carry guest
// details; member bookings ride on the braincore bearer token.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, bearer string, req models.BookingRequest) (*models.Booking, error) {
	if bearer == "" && req.Guest == nil {
		return nil, fmt.Errorf("guest details are required without a member session")
	}
	return s.Client.CreateBooking(ctx, bearer, req)
}

// ListMemberBookings lists the member's upcoming bookings.
func (s *DefaultBookingService) ListMemberBookings(ctx context.Context, bearer string) ([]models.Booking, error) {
	return s.Client.GetMemberBookings(ctx, bearer)
}

// CancelBooking cancels a member booking on braincore.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bearer, bookingID string) error {
	return s.Client.CancelBooking(ctx, bearer, bookingID)
}
