package utils

import (
	"testing"
	"time"
)

func TestHealthSnapshotRoundTrip(t *testing.T) {
	want := HealthStatus{Mongo: true, Redis: false, CheckedAt: time.Now()}
	setHealthStatus(want)
	if got := GetHealthStatus(); got != want {
		t.Fatalf("GetHealthStatus() = %+v, want %+v", got, want)
	}
}
