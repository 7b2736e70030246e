package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	id := NewOrderID(now)
	require.True(t, strings.HasPrefix(id, "CLK-20260831-"), "got %s", id)

	suffix := strings.TrimPrefix(id, "CLK-20260831-")
	assert.Len(t, suffix, 8)
}

func TestNewOrderID_Unique(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for range 100 {
		id := NewOrderID(now)
		require.False(t, seen[id], "duplicate order id %s", id)
		seen[id] = true
	}
}
