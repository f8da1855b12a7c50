package version

import (
	"testing"
	"time"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest  string
		current string
		want    bool
	}{
		{"v1.2.0", "v1.1.9", true},
		{"v1.2.0", "1.2.0", false},
		{"v2.0.0", "v1.9.9", true},
		{"v1.0.0", "v1.0.1", false},
		{"v1.2", "v1.1.5", true},
		{"v1.2.0", "v1.2", false},
		{"v1.3.0-rc1", "v1.2.0", true}, // pre-release suffix ignored
		{"weird-tag", "v1.0.0", false},
		{"v1.0.0", "weird", false},
		{"", "v1.0.0", false},
	}
	for _, tt := range tests {
		if got := isNewer(tt.latest, tt.current); got != tt.want {
			t.Errorf("isNewer(%q, %q) = %v, want %v", tt.latest, tt.current, got, tt.want)
		}
	}
}

func TestIsDevelopmentVersion(t *testing.T) {
	for _, v := range []string{"", "unknown", "devel", "devel+abc123"} {
		if !isDevelopmentVersion(v) {
			t.Errorf("isDevelopmentVersion(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"v1.0.0", "1.2.3"} {
		if isDevelopmentVersion(v) {
			t.Errorf("isDevelopmentVersion(%q) = true, want false", v)
		}
	}
}

func TestCheck_SkipsDevelopmentBuilds(t *testing.T) {
	result := Check("devel")
	if result.HasUpdate || result.Error != nil {
		t.Errorf("development build check = %+v, want no-op", result)
	}
}

func TestIsCacheValid(t *testing.T) {
	now := time.Now()

	if IsCacheValid(nil, "v1.0.0") {
		t.Error("nil entry should be invalid")
	}

	fresh := &CacheEntry{CurrentVersion: "v1.0.0", CheckedAt: now}
	if !IsCacheValid(fresh, "v1.0.0") {
		t.Error("fresh entry should be valid")
	}

	if IsCacheValid(fresh, "v1.1.0") {
		t.Error("entry from another binary version should be invalid")
	}

	stale := &CacheEntry{CurrentVersion: "v1.0.0", CheckedAt: now.Add(-4 * time.Hour)}
	if IsCacheValid(stale, "v1.0.0") {
		t.Error("entry past TTL should be invalid")
	}
}
