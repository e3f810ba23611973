package service

import (
	"context"

	"slotmachine/models"

	"github.com/stretchr/testify/mock"
)

// MockPlayerRepository is a mock implementation of PlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetByIdentity(ctx context.Context, name string, age int, card string) (*models.Player, error) {
	args := m.Called(ctx, name, age, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) Create(ctx context.Context, name string, age int, card string) error {
	args := m.Called(ctx, name, age, card)
	return args.Error(0)
}

func (m *MockPlayerRepository) SetBalance(ctx context.Context, id int64, balance float64) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

// MockSpinHistoryRepository is a mock implementation of SpinHistoryRepository
type MockSpinHistoryRepository struct {
	mock.Mock
}

func (m *MockSpinHistoryRepository) Record(ctx context.Context, record *models.SpinRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSpinHistoryRepository) GetByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.SpinRecord, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SpinRecord), args.Error(1)
}
