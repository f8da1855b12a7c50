// Package fdmonitor provides file descriptor monitoring utilities.
// A warm pass opens every candidate file in turn, so a climbing FD
// count is the earliest sign of a leaked handle.
package fdmonitor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultWarningThreshold is the FD count that triggers a warning.
	DefaultWarningThreshold = 200
	// DefaultCriticalThreshold is the FD count that triggers a critical warning.
	DefaultCriticalThreshold = 500
	// MinCheckInterval prevents checking too frequently.
	MinCheckInterval = 10 * time.Second
)

var (
	lastCheck         time.Time
	lastCount         int
	lastCheckMu       sync.Mutex
	warningThreshold  = DefaultWarningThreshold
	criticalThreshold = DefaultCriticalThreshold
)

// SetThresholds configures the warning and critical thresholds.
func SetThresholds(warning, critical int) {
	warningThreshold = warning
	criticalThreshold = critical
}

// Count returns the current number of open file descriptors for this process.
// On non-Linux/macOS platforms, returns -1.
func Count() int {
	fdDir := fdDirPath()
	if fdDir == "" {
		return -1
	}

	entries, err := os.ReadDir(fdDir)
	if err != nil {
		return -1
	}
	return len(entries)
}

// fdDirPath returns the per-process FD directory, or "" when unsupported.
func fdDirPath() string {
	switch runtime.GOOS {
	case "darwin":
		// On macOS, /dev/fd shows the current process's FDs
		return "/dev/fd"
	case "linux":
		return fmt.Sprintf("/proc/%d/fd", os.Getpid())
	}
	return ""
}

// Check checks the current FD count and logs a warning if it exceeds thresholds.
// To avoid log spam, checks are rate-limited to MinCheckInterval.
// Returns the current FD count and whether a warning was logged.
func Check(logger *slog.Logger) (count int, warned bool) {
	lastCheckMu.Lock()
	defer lastCheckMu.Unlock()

	if time.Since(lastCheck) < MinCheckInterval {
		return lastCount, false
	}

	count = Count()
	if count < 0 {
		return count, false
	}

	lastCheck = time.Now()
	lastCount = count

	if count >= criticalThreshold {
		if logger != nil {
			logger.Warn("critical FD count", "count", count, "threshold", criticalThreshold)
		}
		return count, true
	}
	if count >= warningThreshold {
		if logger != nil {
			logger.Warn("high FD count", "count", count, "threshold", warningThreshold)
		}
		return count, true
	}

	return count, false
}

// CheckWithContext checks FD count and includes context about what triggered the check.
func CheckWithContext(logger *slog.Logger, context string) (count int, warned bool) {
	count, warned = Check(logger)
	if warned && logger != nil {
		logger.Debug("FD check context", "context", context, "count", count)
	}
	return count, warned
}

// DebugInfo returns open FDs grouped by what they point at, using the
// same buckets the warm pass reads. On unsupported platforms, returns
// an empty map.
func DebugInfo() map[string]int {
	info := make(map[string]int)

	fdDir := fdDirPath()
	if fdDir == "" {
		return info
	}

	entries, err := os.ReadDir(fdDir)
	if err != nil {
		return info
	}

	for _, e := range entries {
		fdPath := filepath.Join(fdDir, e.Name())
		target, err := os.Readlink(fdPath)
		if err != nil {
			continue
		}
		info[categorize(target)]++
	}

	return info
}

// categorize buckets an FD target by the candidate classes warming reads.
func categorize(target string) string {
	switch {
	case target == "pipe" || target == "anon_inode:[pipe]":
		return "pipe"
	case strings.HasPrefix(target, "socket") || strings.HasPrefix(target, "["):
		return "socket"
	}

	switch strings.ToLower(filepath.Ext(target)) {
	case ".jar":
		return "jar"
	case ".zip":
		return "zip"
	case ".json", ".toml", ".cfg", ".ini":
		return "config"
	case ".png", ".ogg", ".wav":
		return "media"
	}

	if isDirectory(target) {
		return "directory"
	}
	return "file"
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
