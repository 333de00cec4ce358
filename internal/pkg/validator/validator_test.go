package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-06-10")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = IsValidDate("2025-13-40")
	assert.False(t, ok)
	_, ok = IsValidDate("10-06-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidClock(t *testing.T) {
	assert.True(t, IsValidClock("00:00"))
	assert.True(t, IsValidClock("08:30"))
	assert.True(t, IsValidClock("23:59"))

	assert.False(t, IsValidClock("24:00"))
	assert.False(t, IsValidClock("8:30"))
	assert.False(t, IsValidClock("08:60"))
	assert.False(t, IsValidClock("08:30:00"))
	assert.False(t, IsValidClock(""))
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"present", "late", "absent"}
	assert.True(t, IsInSlice("late", statuses))
	assert.False(t, IsInSlice("working", statuses))
	assert.False(t, IsInSlice("", statuses))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "end_date", Message: "end_date is required"},
	}

	assert.Contains(t, errs.Error(), "start_date: start_date is required")
	assert.Contains(t, errs.Error(), "; ")

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "end_date is required", m["end_date"])
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("6f1f64a3-9f0e-4df1-8f5a-2b1f0e9d8c7b"))
	assert.True(t, IsValidUUID("6F1F64A3-9F0E-4DF1-8F5A-2B1F0E9D8C7B"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}
