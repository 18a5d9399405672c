package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pricetimeline/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupService_CleanupOldOffers(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name:          "successful cleanup",
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offerRepo := new(testutil.MockOfferRepository)
			offerRepo.On("DeleteEndedBefore", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
				// Cutoff is a civil day roughly retention days back.
				return cutoff.Hour() == 0 && cutoff.Location() == time.UTC
			})).Return(int64(3), tt.mockError)

			svc := NewCleanupService(offerRepo, 60, time.UTC, testutil.NewTestLogger())

			err := svc.CleanupOldOffers(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			offerRepo.AssertExpectations(t)
		})
	}
}
