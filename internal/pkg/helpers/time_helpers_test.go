package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPositiveDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "15s", want: 15 * time.Second},
		{value: "", want: time.Minute},
		{value: "soon", want: time.Minute},
		{value: "0s", want: time.Minute},
		{value: "-5s", want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, PositiveDuration(tt.value, time.Minute))
		})
	}
}
