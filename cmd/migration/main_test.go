package main

import (
	"strings"
	"testing"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{args: nil, want: 1},
		{args: []string{"3"}, want: 3},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"x"}, wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseSteps(tt.args)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %v", tt.args)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("unexpected steps for %v: got=%d err=%v want=%d", tt.args, got, err, tt.want)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion(" 7 "); err != nil || v != 7 {
		t.Fatalf("unexpected version: got=%d err=%v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if v, err := parseTarget("12"); err != nil || v != 12 {
		t.Fatalf("unexpected target: got=%d err=%v", v, err)
	}
	if _, err := parseTarget("-2"); err == nil {
		t.Fatalf("expected error for negative target")
	}
}

func TestNormalizeDBURL(t *testing.T) {
	got := normalizeDBURL("postgres://u:p@localhost/fantasy_fitness", true)
	if !strings.Contains(got, "disable_prepared_binary_result=yes") {
		t.Fatalf("expected flag in url, got %q", got)
	}
	in := "postgres://u:p@localhost/fantasy_fitness"
	if got := normalizeDBURL(in, false); got != in {
		t.Fatalf("expected url unchanged, got %q", got)
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "true")
	if !envBool("DB_DISABLE_PREPARED_BINARY_RESULT") {
		t.Fatalf("expected true")
	}
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "nope")
	if envBool("DB_DISABLE_PREPARED_BINARY_RESULT") {
		t.Fatalf("expected false for invalid value")
	}
}
