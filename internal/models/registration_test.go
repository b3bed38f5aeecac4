package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextMembershipNumber(t *testing.T) {
	tests := []struct {
		name   string
		latest string
		year   int
		want   string
	}{
		{"first of year", "", 2025, "PSP-K-2025-00001"},
		{"increments suffix", "PSP-K-2025-00001", 2025, "PSP-K-2025-00002"},
		{"keeps zero padding", "PSP-K-2025-00009", 2025, "PSP-K-2025-00010"},
		{"five digit rollover", "PSP-K-2025-00099", 2025, "PSP-K-2025-00100"},
		{"new year restarts", "", 2026, "PSP-K-2026-00001"},
		{"large sequence", "PSP-K-2025-12344", 2025, "PSP-K-2025-12345"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextMembershipNumber(tc.latest, tc.year))
		})
	}
}

func TestIsValidSIG(t *testing.T) {
	assert.True(t, IsValidSIG("youth"))
	assert.True(t, IsValidSIG("women"))
	assert.False(t, IsValidSIG("Youth"))
	assert.False(t, IsValidSIG(""))
}

func TestFullName(t *testing.T) {
	r := &Registration{FirstName: "Wanjiku", LastName: "Kamau"}
	assert.Equal(t, "Wanjiku Kamau", r.FullName())

	r = &Registration{FirstName: "Cher"}
	assert.Equal(t, "Cher", r.FullName())
}
