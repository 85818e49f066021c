package fixtime

import (
	"testing"
	"time"
)

func TestMono_nonDecreasing(t *testing.T) {
	a := Mono()
	b := Mono()
	if b < a {
		t.Errorf(`went backward: %d then %d`, a, b)
	}
	if a < 0 {
		t.Errorf(`negative: %d`, a)
	}
}

func TestMono_seam(t *testing.T) {
	defer func() { timeNow = time.Now }()
	timeNow = func() time.Time { return monoEpoch.Add(5 * time.Millisecond) }
	if got, want := Mono(), FromDuration(5*time.Millisecond); got != want {
		t.Errorf(`got %d, want %d`, got, want)
	}
}

func TestWall_seam(t *testing.T) {
	defer func() { timeNow = time.Now }()
	at := time.Unix(1700000000, 250_000_000)
	timeNow = func() time.Time { return at }
	if got, want := Wall(), FromTime(at); got != want {
		t.Errorf(`got %d, want %d`, got, want)
	}
}
