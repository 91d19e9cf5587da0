package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// versionPattern matches intermediate-output version folders named
// vMM.mm.pp (e.g. "v1.0.3").
var versionPattern = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)$`)

type semver struct{ major, minor, patch int }

func (v semver) less(o semver) bool {
	if v.major != o.major {
		return v.major < o.major
	}
	if v.minor != o.minor {
		return v.minor < o.minor
	}
	return v.patch < o.patch
}

func (v semver) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.major, v.minor, v.patch)
}

// NextIntermediateVersion scans root for existing vMM.mm.pp folders and
// returns the name of the next one to create: the latest existing version
// with its patch component incremented, or "v1.0.0" if root has no
// version folders yet (including when root itself does not exist).
func NextIntermediateVersion(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return semver{1, 0, 0}.String(), nil
	}
	if err != nil {
		return "", fmt.Errorf("config: scanning %s: %w", root, err)
	}

	var latest semver
	found := false
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m := versionPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		v := semver{
			major: atoi(m[1]),
			minor: atoi(m[2]),
			patch: atoi(m[3]),
		}
		if !found || latest.less(v) {
			latest, found = v, true
		}
	}

	if !found {
		return semver{1, 0, 0}.String(), nil
	}
	latest.patch++
	return latest.String(), nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
