package main

import (
	"testing"

	"github.com/vovakirdan/crazytype/internal/games/crazytype"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"", crazytype.IDTimer, false},
		{"timer", crazytype.IDTimer, false},
		{"endless", crazytype.IDEndless, false},
		{crazytype.IDEndless, crazytype.IDEndless, false},
		{"snake", "", true},
	}
	for _, tt := range tests {
		got, err := resolveMode(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveMode(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveMode(%q) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"127.0.0.1:2222": "2222",
		"bogus":          "bogus",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}
