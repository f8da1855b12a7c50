package fdmonitor

import (
	"testing"
)

func TestCount(t *testing.T) {
	count := Count()
	// On supported platforms (darwin, linux), count should be positive
	// On unsupported platforms or sandboxed environments, count may be -1
	// This is acceptable as the monitoring is best-effort
	t.Logf("Current FD count: %d (negative is OK in sandboxed test environments)", count)
}

func TestCheck_RateLimited(t *testing.T) {
	// First check should work
	count, warned := Check(nil)
	if count > 0 {
		t.Logf("FD count: %d, warned: %v", count, warned)
	}

	// Second immediate check should return cached value due to rate limiting
	count2, _ := Check(nil)
	if count > 0 && count2 != count {
		t.Logf("Second check returned different value: %d vs %d (may be due to test timing)", count, count2)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"/instances/pack/mods/Create.jar", "jar"},
		{"/instances/pack/resourcepacks/Faithful.ZIP", "zip"},
		{"/instances/pack/config/create.toml", "config"},
		{"/instances/pack/options.json", "config"},
		{"/assets/sound.ogg", "media"},
		{"pipe", "pipe"},
		{"anon_inode:[pipe]", "pipe"},
		{"socket:[12345]", "socket"},
		{"[eventfd]", "socket"},
		{"/some/data.bin", "file"},
	}
	for _, tt := range tests {
		if got := categorize(tt.target); got != tt.want {
			t.Errorf("categorize(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestDebugInfo(t *testing.T) {
	info := DebugInfo()
	t.Logf("FD breakdown: %v", info)

	total := 0
	for _, v := range info {
		total += v
	}
	if total > 0 {
		t.Logf("Total FDs categorized: %d", total)
	}
}

func TestSetThresholds(t *testing.T) {
	origWarning := warningThreshold
	origCritical := criticalThreshold
	defer func() {
		warningThreshold = origWarning
		criticalThreshold = origCritical
	}()

	SetThresholds(100, 300)
	if warningThreshold != 100 || criticalThreshold != 300 {
		t.Errorf("SetThresholds failed: got warning=%d, critical=%d", warningThreshold, criticalThreshold)
	}
}
