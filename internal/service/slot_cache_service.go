package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrNoAvailability is returned when a schedule has no free slots left
// according to the cache.
var ErrNoAvailability = errors.New("schedule has no available slots")

// claimScript atomically decrements the availability counter. The Redis Go
// client switches to EVALSHA after the first call, so the script text is
// not resent under load.
//
// Logic:
// 1. DECR availability key
// 2. If result < 0 -> INCR back (rollback) and return -1 (nothing free)
// 3. Otherwise return the remaining count
var claimScript = redis.NewScript(`
	local remaining = redis.call('DECR', KEYS[1])
	if remaining < 0 then
		redis.call('INCR', KEYS[1])
		return -1
	end
	return remaining
`)

const (
	// Availability counters live under this prefix, keyed by schedule ID.
	availabilityKeyPrefix = "schedule:available:"

	// Counters expire well after the schedule date has passed; generation
	// reseeds them, so a lapsed key only means a DB fallback.
	availabilityTTL = 45 * 24 * time.Hour
)

// SlotCacheService keeps a Redis counter of free slots per schedule so the
// booking path can reject full schedules without a DB round trip. The
// database remains the source of truth; the counter is seeded at
// generation time and compensated when a DB write fails after a claim.
type SlotCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSlotCacheService(redisClient *redis.Client, log *logrus.Logger) *SlotCacheService {
	return &SlotCacheService{
		redisClient: redisClient,
		log:         log,
	}
}

func availabilityKey(scheduleID int) string {
	return fmt.Sprintf("%s%d", availabilityKeyPrefix, scheduleID)
}

// SeedSchedule sets the availability counter for a freshly generated
// schedule. Called after the generation transaction commits.
func (s *SlotCacheService) SeedSchedule(ctx context.Context, scheduleID int, availableSlots int) error {
	err := s.redisClient.Set(ctx, availabilityKey(scheduleID), availableSlots, availabilityTTL).Err()
	if err != nil {
		s.log.Warnf("Failed to seed slot cache for schedule %d: %+v", scheduleID, err)
		return err
	}
	return nil
}

// DropSchedule removes the counter, used when a schedule is deleted or
// about to be regenerated.
func (s *SlotCacheService) DropSchedule(ctx context.Context, scheduleID int) error {
	err := s.redisClient.Del(ctx, availabilityKey(scheduleID)).Err()
	if err != nil {
		s.log.Warnf("Failed to drop slot cache for schedule %d: %+v", scheduleID, err)
		return err
	}
	return nil
}

// ClaimSlot reserves one unit of availability. Returns ErrNoAvailability
// when the counter is exhausted. A missing key claims through to the DB
// guard instead of failing, so cache loss never blocks booking.
func (s *SlotCacheService) ClaimSlot(ctx context.Context, scheduleID int) error {
	key := availabilityKey(scheduleID)

	exists, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		s.log.Warnf("Slot cache unavailable for schedule %d: %+v", scheduleID, err)
		return nil
	}
	if exists == 0 {
		return nil
	}

	remaining, err := claimScript.Run(ctx, s.redisClient, []string{key}).Int64()
	if err != nil {
		s.log.Warnf("Slot cache claim failed for schedule %d: %+v", scheduleID, err)
		return nil
	}
	if remaining < 0 {
		return ErrNoAvailability
	}
	return nil
}

// RestoreSlot returns one unit of availability, used on cancellation and
// as compensation when the booking insert fails after a claim.
func (s *SlotCacheService) RestoreSlot(ctx context.Context, scheduleID int) error {
	key := availabilityKey(scheduleID)

	exists, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return nil
	}

	return s.redisClient.Incr(ctx, key).Err()
}
