package systems

import (
	"math"
	"testing"

	"github.com/decker502/showcase/pkg/game"
)

func TestIntersectionWatcher_Ratio(t *testing.T) {
	w := NewIntersectionWatcher(0.1, 0, nil)
	view := game.Rect{X: 0, Y: 0, W: 800, H: 600}

	tests := []struct {
		name   string
		target game.Rect
		want   float64
	}{
		{"fully inside", game.Rect{X: 10, Y: 10, W: 100, H: 100}, 1},
		{"fully below", game.Rect{X: 10, Y: 700, W: 100, H: 100}, 0},
		{"touching edge", game.Rect{X: 10, Y: 600, W: 100, H: 100}, 0},
		{"half inside", game.Rect{X: 10, Y: 550, W: 100, H: 100}, 0.5},
		{"tenth inside", game.Rect{X: 0, Y: 590, W: 100, H: 100}, 0.1},
		{"point inside", game.Rect{X: 5, Y: 5}, 1},
		{"point outside", game.Rect{X: 5, Y: 900}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Ratio(tt.target, view)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Ratio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectionWatcher_RootMargin(t *testing.T) {
	w := NewIntersectionWatcher(0.1, 50, nil)
	view := game.Rect{X: 0, Y: 0, W: 800, H: 600}
	target := game.Rect{X: 0, Y: 620, W: 100, H: 100}

	if got := w.Ratio(target, view); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Ratio() with 50px margin = %v, want 0.3", got)
	}
}

func TestIntersectionWatcher_FirstCheckReportsAll(t *testing.T) {
	var batches [][]IntersectionEntry
	w := NewIntersectionWatcher(0.1, 0, func(entries []IntersectionEntry) {
		batches = append(batches, entries)
	})
	w.Observe("a", game.Rect{X: 0, Y: 0, W: 100, H: 100})
	w.Observe("b", game.Rect{X: 0, Y: 2000, W: 100, H: 100})

	view := game.Rect{X: 0, Y: 0, W: 800, H: 600}
	entries := w.Check(view)
	if len(entries) != 2 {
		t.Fatalf("first Check reported %d entries, want 2", len(entries))
	}
	if !entries[0].Intersecting || entries[1].Intersecting {
		t.Errorf("entries = %+v, want a intersecting and b not", entries)
	}

	// 无变化时不回调
	if got := w.Check(view); len(got) != 0 {
		t.Errorf("second Check reported %d entries, want 0", len(got))
	}
	if len(batches) != 1 {
		t.Errorf("callback invoked %d times, want 1", len(batches))
	}
}

func TestIntersectionWatcher_ReportsOnlyChanges(t *testing.T) {
	w := NewIntersectionWatcher(0.1, 0, nil)
	w.Observe("a", game.Rect{X: 0, Y: 0, W: 100, H: 100})
	w.Observe("b", game.Rect{X: 0, Y: 700, W: 100, H: 100})
	w.Check(game.Rect{W: 800, H: 600})

	// 向下滚动 200：a 离开，b 进入
	entries := w.Check(game.Rect{Y: 200, W: 800, H: 600})
	if len(entries) != 2 {
		t.Fatalf("Check reported %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		switch e.ID {
		case "a":
			if e.Intersecting {
				t.Error("a should have left the viewport")
			}
		case "b":
			if !e.Intersecting {
				t.Error("b should have entered the viewport")
			}
		}
	}
}

func TestIntersectionWatcher_ThresholdCrossing(t *testing.T) {
	w := NewIntersectionWatcher(0.1, 0, nil)
	w.Observe("card", game.Rect{X: 0, Y: 600, W: 100, H: 100})
	w.Check(game.Rect{W: 800, H: 600})

	// 5% 可见：低于阈值
	if got := w.Check(game.Rect{Y: 5, W: 800, H: 600}); len(got) != 0 {
		t.Fatalf("5%% visibility reported %+v, want nothing", got)
	}
	// 10% 可见：跨过阈值
	got := w.Check(game.Rect{Y: 10, W: 800, H: 600})
	if len(got) != 1 || !got[0].Intersecting {
		t.Fatalf("10%% visibility reported %+v, want one intersecting entry", got)
	}
}

func TestIntersectionWatcher_UnobserveAndDisconnect(t *testing.T) {
	calls := 0
	w := NewIntersectionWatcher(0.1, 0, func([]IntersectionEntry) { calls++ })
	w.Observe("a", game.Rect{W: 10, H: 10})
	w.Observe("b", game.Rect{W: 10, H: 10})
	w.Observe("a", game.Rect{X: 5, W: 10, H: 10})

	if w.Observed() != 2 {
		t.Fatalf("Observed() = %d, want 2", w.Observed())
	}
	w.Unobserve("a")
	if w.Observed() != 1 {
		t.Errorf("Observed() after Unobserve = %d, want 1", w.Observed())
	}
	w.Unobserve("missing")

	w.Disconnect()
	if w.Observed() != 0 {
		t.Errorf("Observed() after Disconnect = %d, want 0", w.Observed())
	}
	w.Check(game.Rect{W: 800, H: 600})
	if calls != 0 {
		t.Errorf("callback invoked %d times after Disconnect, want 0", calls)
	}
}
