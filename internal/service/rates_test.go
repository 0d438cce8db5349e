package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		want      int
	}{
		{"новичок", 0, 1},
		{"до первого порога", 5, 1},
		{"ровно на пороге", 6, 2},
		{"середина лестницы", 60, 5},
		{"последний порог", 226, 10},
		{"выше последнего порога", 1000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateLevel(tt.completed))
		})
	}
}
