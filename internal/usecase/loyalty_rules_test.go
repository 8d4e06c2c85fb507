package usecase

import (
	"testing"
	"time"

	"hotel-loyalty/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededLevelsDesc() []*entity.LoyaltyLevel {
	return []*entity.LoyaltyLevel{
		{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, LevelName: "Gold", MinPoints: 5001, ValidityInMonths: 12},
		{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, LevelName: "Silver", MinPoints: 1001, MaxPoints: intPtr(5000), ValidityInMonths: 12},
		{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, LevelName: "Bronze", MinPoints: 0, MaxPoints: intPtr(1000), ValidityInMonths: 12},
	}
}

func TestSelectLevel(t *testing.T) {
	levels := seededLevelsDesc()

	tests := []struct {
		points   int
		expected string
	}{
		{0, "Bronze"},
		{1000, "Bronze"},
		{1001, "Silver"},
		{1500, "Silver"},
		{5000, "Silver"},
		{5001, "Gold"},
		{1_000_000, "Gold"},
	}

	for _, tt := range tests {
		level := SelectLevel(levels, tt.points)
		require.NotNil(t, level, "points %d", tt.points)
		assert.Equal(t, tt.expected, level.LevelName, "points %d", tt.points)
	}
}

func TestSelectLevel_NoMatch(t *testing.T) {
	assert.Nil(t, SelectLevel(seededLevelsDesc(), -5))
	assert.Nil(t, SelectLevel(nil, 100))
}

func TestSelectLevel_OverlappingRangesPreferFirstInOrder(t *testing.T) {
	high := &entity.LoyaltyLevel{LevelName: "High", MinPoints: 500}
	low := &entity.LoyaltyLevel{LevelName: "Low", MinPoints: 0, MaxPoints: intPtr(1000)}

	assert.Equal(t, "High", SelectLevel([]*entity.LoyaltyLevel{high, low}, 700).LevelName)
}

func TestLevelExpiry(t *testing.T) {
	activated := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		LevelExpiry(&entity.LoyaltyLevel{ValidityInMonths: 12}, activated))
	assert.Equal(t, time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC),
		LevelExpiry(&entity.LoyaltyLevel{ValidityInMonths: 6}, activated))
	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		LevelExpiry(&entity.LoyaltyLevel{}, activated))
}

func TestNeedsNewStatus(t *testing.T) {
	level := &entity.LoyaltyLevel{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}}

	assert.True(t, NeedsNewStatus(nil, level))
	assert.False(t, NeedsNewStatus(&entity.UserLoyaltyStatus{LevelID: level.ID}, level))
	assert.True(t, NeedsNewStatus(&entity.UserLoyaltyStatus{LevelID: uuid.New()}, level))
	assert.False(t, NeedsNewStatus(nil, nil))
}
