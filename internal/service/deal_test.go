package service

import (
	"testing"

	"github.com/Kamibony/DealUpCool/internal/domain"
	"github.com/Kamibony/DealUpCool/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDealService_Create(t *testing.T) {
	tests := []struct {
		name          string
		deal          domain.Deal
		expectInsert  bool
		expectedError bool
	}{
		{
			name:         "valid deal",
			deal:         domain.Deal{Name: "Káva", DealPrice: 299},
			expectInsert: true,
		},
		{
			name:          "empty name",
			deal:          domain.Deal{DealPrice: 299},
			expectedError: true,
		},
		{
			name:          "zero price",
			deal:          domain.Deal{Name: "Káva"},
			expectedError: true,
		},
		{
			name:          "negative price",
			deal:          domain.Deal{Name: "Káva", DealPrice: -10},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dealRepo := new(testutil.MockDealRepository)
			if tt.expectInsert {
				dealRepo.On("InsertDeal", tt.deal).Return(int64(1), nil)
			}

			svc := NewDealService(dealRepo)
			id, err := svc.Create(tt.deal)

			if tt.expectedError {
				assert.Error(t, err)
				dealRepo.AssertNotCalled(t, "InsertDeal", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), id)
			}
		})
	}
}

func TestDealService_ListActive(t *testing.T) {
	dealRepo := new(testutil.MockDealRepository)
	expected := []domain.Deal{{ID: 1, Name: "Káva", DealPrice: 299}}
	dealRepo.On("ListActiveDeals").Return(expected, nil)

	svc := NewDealService(dealRepo)
	deals, err := svc.ListActive()

	assert.NoError(t, err)
	assert.Equal(t, expected, deals)
}
