package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
)

func TestRunIndexedKeepsOrder(t *testing.T) {
	var inflight, peak atomic.Int32
	got, err := RunIndexed(context.Background(), 2, 10, func(_ context.Context, i int) (int, error) {
		n := inflight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		defer inflight.Add(-1)
		return i * i, nil
	})
	if err != nil {
		t.Fatalf("RunIndexed: %v", err)
	}
	for i, v := range got {
		if v != i*i {
			t.Fatalf("got[%d] = %d", i, v)
		}
	}
	if peak.Load() > 2 {
		t.Fatalf("more than 2 calls in flight: %d", peak.Load())
	}
}

func TestRunIndexedCollectsErrors(t *testing.T) {
	errOdd := errors.New("odd")
	_, err := RunIndexed(context.Background(), 4, 6, func(_ context.Context, i int) (string, error) {
		if i%2 == 1 {
			return "", fmt.Errorf("item %d: %w", i, errOdd)
		}
		return "ok", nil
	})
	if err == nil || !errors.Is(err, errOdd) {
		t.Fatalf("want aggregated odd errors, got %v", err)
	}
	for _, want := range []string{"item 1", "item 3", "item 5"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}
