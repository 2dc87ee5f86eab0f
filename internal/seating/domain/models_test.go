package domain

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	guestdomain "github.com/vowsuite/vowsuite/internal/guest/domain"
)

func TestClassifyOccupancy(t *testing.T) {
	assert.Equal(t, OccupancyUnderfull, ClassifyOccupancy(5, 8))
	assert.Equal(t, OccupancyFull, ClassifyOccupancy(8, 8))
	assert.Equal(t, OccupancyOverfull, ClassifyOccupancy(9, 8))
	assert.Equal(t, OccupancyUnderfull, ClassifyOccupancy(0, 8))
}

func TestBeginTransition_NoOp(t *testing.T) {
	tableID := snowflake.ID(42)
	other := snowflake.ID(43)

	seated := &guestdomain.Guest{ID: 1, WeddingID: 2, TableID: &tableID}
	unseated := &guestdomain.Guest{ID: 1, WeddingID: 2}

	assert.True(t, BeginTransition(seated, &tableID).NoOp())
	assert.True(t, BeginTransition(unseated, nil).NoOp())
	assert.False(t, BeginTransition(seated, &other).NoOp())
	assert.False(t, BeginTransition(seated, nil).NoOp())
	assert.False(t, BeginTransition(unseated, &tableID).NoOp())
}
