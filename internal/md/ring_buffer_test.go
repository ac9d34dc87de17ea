package md

import "testing"

func TestRingBufferSMA(t *testing.T) {
	buffer := NewRingBuffer(5)
	values := []float64{1, 2, 3, 4, 5}
	for _, v := range values {
		buffer.Add(v)
	}

	sma, err := buffer.SMA(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := (3.0 + 4.0 + 5.0) / 3.0
	if sma != expected {
		t.Fatalf("expected SMA %.2f, got %.2f", expected, sma)
	}
}

func TestRingBufferSMAInsufficientData(t *testing.T) {
	buffer := NewRingBuffer(5)
	buffer.Add(1)

	if _, err := buffer.SMA(3); err == nil {
		t.Fatalf("expected error for insufficient data")
	}
}

func TestRingBufferWrapsAround(t *testing.T) {
	buffer := NewRingBuffer(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		buffer.Add(v)
	}

	got := buffer.Values()
	want := []float64{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRingBufferTrailingMean(t *testing.T) {
	buffer := NewRingBuffer(3)
	buffer.Add(10)
	buffer.Add(20)

	if mean := buffer.TrailingMean(3); mean.IsSome() {
		t.Fatalf("expected undefined mean before window fills, got %v", mean.Unwrap())
	}

	buffer.Add(30)
	mean := buffer.TrailingMean(3)
	if mean.IsNone() {
		t.Fatalf("expected defined mean once window fills")
	}
	if mean.Unwrap() != 20 {
		t.Fatalf("expected mean 20, got %v", mean.Unwrap())
	}
}
