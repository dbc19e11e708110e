package core

import (
	"testing"
	"time"
)

func TestTickerFiresOncePerInterval(t *testing.T) {
	clock := &ManualClock{T: time.Unix(100, 0)}
	tk := NewTicker(clock, 200*time.Millisecond)

	if tk.Ready() {
		t.Fatal("ticker must not fire before the interval elapses")
	}
	clock.Advance(199 * time.Millisecond)
	if tk.Ready() {
		t.Fatal("ticker fired early")
	}
	clock.Advance(time.Millisecond)
	if !tk.Ready() {
		t.Fatal("ticker should fire once the interval has elapsed")
	}
	if tk.Ready() {
		t.Fatal("ticker should restart after firing")
	}
}

func TestTickerDoesNotCatchUp(t *testing.T) {
	clock := &ManualClock{T: time.Unix(0, 0)}
	tk := NewTicker(clock, 200*time.Millisecond)

	clock.Advance(time.Second)
	if !tk.Ready() {
		t.Fatal("expected a firing after a long stall")
	}
	if tk.Ready() {
		t.Fatal("ticker must not replay missed intervals")
	}
	if got := tk.Last(); !got.Equal(clock.Now()) {
		t.Fatalf("Last() = %v, want %v", got, clock.Now())
	}
}

func TestNewTickerDefaults(t *testing.T) {
	tk := NewTicker(nil, 0)
	if tk.Interval() != time.Second/60 {
		t.Fatalf("unexpected default interval %v", tk.Interval())
	}
}
