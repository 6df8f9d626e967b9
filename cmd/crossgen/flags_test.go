package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseArgs_SetsKnownFlags(t *testing.T) {
	cfg := defaultConfig()
	var out bytes.Buffer
	ok := parseArgs([]string{"-n", "3", "-s", "42", "-t", "4"}, &out, &cfg)
	if !ok {
		t.Fatalf("parseArgs() ok = false, diagnostic %q", out.String())
	}
	if cfg.n != 3 || cfg.seed != 42 || cfg.threads != 4 {
		t.Errorf("cfg = %+v, want {n:3 seed:42 threads:4}", cfg)
	}
}

func TestParseArgs_UnknownFlagIgnored(t *testing.T) {
	cfg := defaultConfig()
	var out bytes.Buffer
	ok := parseArgs([]string{"-x", "whatever", "-n", "5"}, &out, &cfg)
	if !ok {
		t.Fatalf("parseArgs() ok = false, diagnostic %q", out.String())
	}
	if cfg.n != 5 {
		t.Errorf("cfg.n = %d, want 5", cfg.n)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected diagnostic output: %q", out.String())
	}
}

func TestParseArgs_MalformedValueStopsAndReports(t *testing.T) {
	cfg := defaultConfig()
	var out bytes.Buffer
	ok := parseArgs([]string{"-n", "abc"}, &out, &cfg)
	if ok {
		t.Fatalf("parseArgs() ok = true, want false")
	}
	if !strings.HasPrefix(out.String(), "-n abc:") {
		t.Errorf("diagnostic = %q, want prefix %q", out.String(), "-n abc:")
	}
}

func TestParseArgs_TrailingFlagWithNoValueIgnored(t *testing.T) {
	cfg := defaultConfig()
	var out bytes.Buffer
	ok := parseArgs([]string{"-n", "3", "-t"}, &out, &cfg)
	if !ok {
		t.Fatalf("parseArgs() ok = false, diagnostic %q", out.String())
	}
	if cfg.n != 3 {
		t.Errorf("cfg.n = %d, want 3", cfg.n)
	}
	if cfg.threads != 1 {
		t.Errorf("cfg.threads = %d, want default 1", cfg.threads)
	}
}

func TestParseArgs_EmptyArgsKeepsDefaults(t *testing.T) {
	cfg := defaultConfig()
	var out bytes.Buffer
	if ok := parseArgs(nil, &out, &cfg); !ok {
		t.Fatalf("parseArgs() ok = false")
	}
	if cfg != defaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}
