// Package version checks GitHub for newer releases and caches the
// result so the check runs at most once per TTL window.
package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	repoOwner = "wilbur182"
	repoName  = "mcwarm"
	apiURL    = "https://api.github.com/repos/%s/%s/releases/latest"
)

// Release represents a GitHub release response.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}

// CheckResult holds the result of a version check.
type CheckResult struct {
	CurrentVersion string
	LatestVersion  string
	UpdateURL      string
	ReleaseNotes   string
	HasUpdate      bool
	Error          error
}

// Check fetches the latest release from GitHub and compares versions.
func Check(currentVersion string) CheckResult {
	return CheckRepo(repoOwner, repoName, currentVersion)
}

// CheckRepo fetches the latest release for a repo and compares versions.
func CheckRepo(owner, repo, currentVersion string) CheckResult {
	result := CheckResult{CurrentVersion: currentVersion}

	if isDevelopmentVersion(currentVersion) {
		return result
	}

	client := &http.Client{Timeout: 5 * time.Second}
	url := fmt.Sprintf(apiURL, owner, repo)

	resp, err := client.Get(url)
	if err != nil {
		result.Error = err
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Errorf("github api: %s", resp.Status)
		return result
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		result.Error = err
		return result
	}

	result.LatestVersion = release.TagName
	result.UpdateURL = release.HTMLURL
	result.ReleaseNotes = release.Body
	result.HasUpdate = isNewer(release.TagName, currentVersion)

	return result
}

// isDevelopmentVersion returns true for non-release versions.
func isDevelopmentVersion(v string) bool {
	if v == "" || v == "unknown" || v == "devel" {
		return true
	}
	if strings.HasPrefix(v, "devel+") {
		return true
	}
	return false
}

// isNewer reports whether latest is a higher release than current.
// Tags compare as dotted numbers after trimming a leading "v" and any
// pre-release suffix; unparseable tags never report an update.
func isNewer(latest, current string) bool {
	lParts := versionParts(latest)
	cParts := versionParts(current)
	if lParts == nil || cParts == nil {
		return false
	}

	n := len(lParts)
	if len(cParts) > n {
		n = len(cParts)
	}
	for i := 0; i < n; i++ {
		var l, c int
		if i < len(lParts) {
			l = lParts[i]
		}
		if i < len(cParts) {
			c = cParts[i]
		}
		if l != c {
			return l > c
		}
	}
	return false
}

// versionParts parses "v1.2.3" into [1 2 3], or nil if not numeric.
func versionParts(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	if v == "" {
		return nil
	}

	fields := strings.Split(v, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil
		}
		parts = append(parts, n)
	}
	return parts
}
