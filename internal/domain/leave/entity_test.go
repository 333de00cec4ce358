package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCovers_BoundsInclusive(t *testing.T) {
	req := LeaveRequest{
		StartDate: mustDate("2025-06-10"),
		EndDate:   mustDate("2025-06-12"),
	}

	assert.False(t, req.Covers(mustDate("2025-06-09")))
	assert.True(t, req.Covers(mustDate("2025-06-10")))
	assert.True(t, req.Covers(mustDate("2025-06-11")))
	assert.True(t, req.Covers(mustDate("2025-06-12")))
	assert.False(t, req.Covers(mustDate("2025-06-13")))
}

func TestCovers_IgnoresTimeOfDay(t *testing.T) {
	req := LeaveRequest{
		StartDate: mustDate("2025-06-10").Add(9 * time.Hour),
		EndDate:   mustDate("2025-06-10").Add(17 * time.Hour),
	}

	assert.True(t, req.Covers(mustDate("2025-06-10").Add(23*time.Hour)))
	assert.True(t, req.Covers(mustDate("2025-06-10")))
	assert.False(t, req.Covers(mustDate("2025-06-11")))
}

func TestIsApproved(t *testing.T) {
	assert.True(t, LeaveRequest{Status: LeaveRequestStatusApproved}.IsApproved())
	assert.False(t, LeaveRequest{Status: LeaveRequestStatusPending}.IsApproved())
	assert.False(t, LeaveRequest{Status: LeaveRequestStatusRejected}.IsApproved())
}
