package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GianniLaBamba/aoristic-kkf/config"
)

// NextFreePath returns the first "<dir>/Aoristic_summary_<N>.<ext>" that does
// not exist yet, starting at N=1. Counters are independent per extension
// because the probe only looks at full file names.
//
// The check-then-create sequence is not atomic: concurrent invocations in the
// same directory may pick the same name. Accepted limitation; callers needing
// concurrency should supply unique directories instead.
func NextFreePath(dir, ext string) (string, error) {
	if dir == "" {
		dir = config.OutputDir()
	}
	for n := 1; n <= config.MAX_FILENAME_ATTEMPTS; n++ {
		path := filepath.Join(dir, fmt.Sprintf("%s%d.%s", config.OUTPUT_FILE_PREFIX, n, ext))
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to probe %q: %w", path, err)
		}
	}
	return "", fmt.Errorf("no free %s<N>.%s name in %q after %d attempts",
		config.OUTPUT_FILE_PREFIX, ext, dir, config.MAX_FILENAME_ATTEMPTS)
}
