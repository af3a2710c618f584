package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"empty set", 0, 10, 0},
		{"single partial page", 5, 10, 1},
		{"exact page boundary", 20, 10, 2},
		{"one past boundary", 21, 10, 3},
		{"public page size", 25, 12, 3},
		{"single item", 1, 12, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, clampPage(0))
	assert.Equal(t, 1, clampPage(-5))
	assert.Equal(t, 1, clampPage(1))
	assert.Equal(t, 7, clampPage(7))
}
