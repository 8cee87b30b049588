// Package source resolves user-supplied template locations.
package source

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/victor-iyi/project/cli/errs"
	"github.com/victor-iyi/project/cli/git"
)

// Source is a resolved template location.
type Source interface {
	// TemplateDir returns the directory the template tree is read from.
	TemplateDir() string
}

// Local is a template directory on the local filesystem.
type Local struct {
	Dir string
}

// TemplateDir returns the template directory.
func (local *Local) TemplateDir() string {
	return local.Dir
}

// Remote is a template repository that has to be staged before use.
type Remote struct {
	Spec *git.RemoteSpec

	// StagingDir is set once the repository has been cloned.
	StagingDir string
}

// TemplateDir returns the staging directory holding the clone.
func (remote *Remote) TemplateDir() string {
	return remote.StagingDir
}

// Resolve turns raw into a template source. A string without a scheme is
// first tried as a filesystem path; when no such path exists it is expanded
// as an owner/repo shorthand against the hosting service and resolved again.
func Resolve(raw string, branch string, svc Service) (Source, error) {
	return resolve(raw, branch, svc, false)
}

func resolve(raw string, branch string, svc Service, expanded bool) (Source, error) {
	if raw == "" {
		return nil, errs.New(errs.URL, "template source is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, errs.Wrapf(err, errs.URL, "cannot parse template source %q", raw)
	}

	if u.Scheme != "" {
		return &Remote{Spec: git.NewRemoteSpec(u, branch)}, nil
	}

	if fullPath, err := filepath.Abs(raw); err == nil {
		if _, err := os.Stat(fullPath); err == nil {
			return &Local{Dir: fullPath}, nil
		}
	}

	// Expand the shorthand at most once to avoid resolution loops.
	if expanded {
		return nil, errs.Newf(errs.URL, "cannot resolve template source %q", raw)
	}

	remoteURL := svc.RemoteURL(raw)
	log.Debugf("%q is not a local path, trying %q", raw, remoteURL)
	return resolve(remoteURL, branch, svc, true)
}
