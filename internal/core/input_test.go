package core

import (
	"testing"
	"time"
)

func TestInputFrameType(t *testing.T) {
	f := NewInputFrame()
	for _, r := range "a1B- z" {
		f.Type(r)
	}

	if string(f.Keys) != "aBz" {
		t.Errorf("Keys = %q, expected only letters %q", string(f.Keys), "aBz")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Type('x')
	f.Delta = time.Second

	f.Clear()

	if f.Has(ActionPause) || len(f.Keys) != 0 || f.Delta != 0 {
		t.Error("Clear should drop actions, keys and delta")
	}
}

func TestPlayerOther(t *testing.T) {
	if Player1.Other() != Player2 || Player2.Other() != Player1 {
		t.Error("Other() should swap seats")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestTickInterval(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickInterval(); got != 20*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 20ms", got)
	}
	if got := (RuntimeConfig{}).TickInterval(); got != time.Second/60 {
		t.Errorf("TickInterval() with zero rate = %v, expected 1/60s", got)
	}
}
