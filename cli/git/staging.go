package git

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/google/uuid"

	"github.com/victor-iyi/project/cli/errs"
)

const (
	stagingPrefix = "project-template-"

	defaultDirPermissions = 0755
)

// NewStagingDir creates a unique directory for a remote clone under the
// system temporary directory.
func NewStagingDir() (string, error) {
	stagingDir := filepath.Join(os.TempDir(),
		fmt.Sprintf("%s%s", stagingPrefix, uuid.NewString()))
	if err := os.MkdirAll(stagingDir, defaultDirPermissions); err != nil {
		return "", errs.Wrapf(err, errs.IO,
			"cannot create staging directory %q", stagingDir)
	}

	return stagingDir, nil
}

// CleanupStaging removes a staging directory. Removal failures are logged,
// never fatal.
func CleanupStaging(stagingDir string) {
	if stagingDir == "" {
		return
	}

	log.Debugf("Removing staging directory %q", stagingDir)
	if err := os.RemoveAll(stagingDir); err != nil {
		log.Warnf("Failed to remove staging directory %q: %s", stagingDir, err)
	}
}
