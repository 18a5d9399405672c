package service

import (
	"context"
	"time"

	"pricetimeline/internal/repository"
	"pricetimeline/internal/timeline"

	"go.uber.org/zap"
)

// CleanupService handles retention of expired offers
type CleanupService struct {
	offerRepo     repository.OfferRepository
	retentionDays int
	loc           *time.Location
	logger        *zap.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(
	offerRepo repository.OfferRepository,
	retentionDays int,
	loc *time.Location,
	logger *zap.Logger,
) *CleanupService {
	return &CleanupService{
		offerRepo:     offerRepo,
		retentionDays: retentionDays,
		loc:           loc,
		logger:        logger,
	}
}

// CleanupOldOffers removes offers whose validity ended more than the
// retention window ago. Expired offers never reach the date axis; this
// only bounds table growth.
func (s *CleanupService) CleanupOldOffers(ctx context.Context) error {
	cutoff := timeline.Day(time.Now().In(s.loc)).AddDate(0, 0, -s.retentionDays)

	s.logger.Info("Starting cleanup of expired offers",
		zap.Int("retention_days", s.retentionDays),
		zap.Time("cutoff", cutoff),
	)

	deleted, err := s.offerRepo.DeleteEndedBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("Failed to cleanup expired offers", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("deleted", deleted))
	return nil
}
