package main

import "testing"

func TestListenAddr(t *testing.T) {
	if got := listenAddr("8080"); got != ":8080" {
		t.Fatalf("expected :8080, got %s", got)
	}

	if got := listenAddr("9999"); got != ":9999" {
		t.Fatalf("expected :9999, got %s", got)
	}
}
