package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCadenceForLines(t *testing.T) {
	tests := []struct {
		base, lines, want int
	}{
		{8, 0, 8},
		{8, 9, 8},
		{8, 10, 7},
		{8, 35, 5},
		{8, 70, 1},
		{8, 500, 1},
		{1, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CadenceForLines(tt.base, tt.lines), "base %d lines %d", tt.base, tt.lines)
	}
}

func TestTickerRunsUntilCancelled(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	tk := New(time.Millisecond, func() {
		if calls.Add(1) == 5 {
			cancel()
		}
	})
	go func() {
		tk.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ticker did not stop after cancel")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(5))
}
