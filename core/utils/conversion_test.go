package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   string
		wantOk bool
	}{
		{"nil", nil, "", false},
		{"string", "10-2024", "10-2024", true},
		{"bytes", []byte("nota"), "nota", true},
		{"int64", int64(1234), "1234", true},
		{"float without trailing zeros", 1500.5, "1500.5", true},
		{"whole float", float64(42), "42", true},
		{"bool", true, "true", true},
		{"date", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "05/03/2024", true},
		{"datetime", time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC), "05/03/2024 14:30:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToString(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}
