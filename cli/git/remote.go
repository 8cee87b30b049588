// Package git acquires remote templates and manages repository metadata.
package git

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/victor-iyi/project/cli/errs"
	"github.com/victor-iyi/project/cli/util"
)

// defaultBranchName is used when the remote does not advertise a default
// branch.
const defaultBranchName = "master"

// RemoteSpec is a remote template repository and a branch selector.
type RemoteSpec struct {
	// URL is the normalized repository location.
	URL *url.URL

	// branch is the explicitly requested branch, empty for "use the
	// remote's default".
	branch string

	// resolved caches the branch name once it is known.
	resolved string
}

// NewRemoteSpec creates a remote spec for u. An empty branch means the
// remote's default branch, resolved lazily on first use.
func NewRemoteSpec(u *url.URL, branch string) *RemoteSpec {
	return &RemoteSpec{URL: u, branch: branch}
}

// Branch returns the branch to materialize from. Without an explicit
// selection the remote's default branch is looked up, once, and cached.
func (spec *RemoteSpec) Branch() (string, error) {
	if spec.resolved != "" {
		return spec.resolved, nil
	}

	if spec.branch != "" {
		spec.resolved = spec.branch
		return spec.resolved, nil
	}

	log.Debugf("Resolving default branch of %q", spec.URL)
	branch, err := spec.defaultBranch()
	if err != nil {
		return "", err
	}

	spec.resolved = branch
	return spec.resolved, nil
}

// defaultBranch asks the remote for its HEAD reference over an anonymous
// in-memory remote.
func (spec *RemoteSpec) defaultBranch() (string, error) {
	remote := gogit.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "origin",
		URLs: []string{spec.URL.String()},
	})

	refs, err := remote.List(&gogit.ListOptions{Auth: spec.auth()})
	if err != nil {
		return "", errs.Wrapf(err, errs.Git,
			"cannot list references of %q", spec.URL)
	}

	for _, ref := range refs {
		if ref.Name() == plumbing.HEAD && ref.Type() == plumbing.SymbolicReference {
			return strings.TrimPrefix(ref.Target().String(), "refs/heads/"), nil
		}
	}

	log.Debugf("Remote %q does not advertise a default branch, assuming %q",
		spec.URL, defaultBranchName)
	return defaultBranchName, nil
}

// CloneTo populates dst with the contents of the selected branch and strips
// the version-control metadata afterwards. dst is created if absent.
func (spec *RemoteSpec) CloneTo(dst string) error {
	branch, err := spec.Branch()
	if err != nil {
		return err
	}

	if err = util.CreateDirectory(dst, defaultDirPermissions); err != nil {
		return err
	}

	log.Infof("Cloning %q (branch %q)", spec.URL, branch)
	_, err = gogit.PlainClone(dst, false, &gogit.CloneOptions{
		URL:           spec.URL.String(),
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Auth:          spec.auth(),
	})
	if err != nil {
		return errs.Wrapf(err, errs.Git, "cannot clone %q", spec.URL)
	}

	return removeVCSMetadata(dst)
}

// auth builds an authentication method for the remote. Only ssh remotes use
// one, and only when the default private key exists.
func (spec *RemoteSpec) auth() transport.AuthMethod {
	if spec.URL.Scheme != "ssh" {
		return nil
	}

	homeDir, err := util.GetHomeDir()
	if err != nil {
		return nil
	}

	keyPath := filepath.Join(homeDir, ".ssh", "id_rsa")
	if !util.IsRegularFile(keyPath) {
		return nil
	}

	keys, err := gitssh.NewPublicKeysFromFile("git", keyPath, "")
	if err != nil {
		log.Debugf("Cannot load ssh key %q: %s", keyPath, err)
		return nil
	}

	return keys
}

// removeVCSMetadata deletes the nested .git directory of a fresh clone so
// the template tree can be materialized without repository internals.
func removeVCSMetadata(dir string) error {
	gitDir := filepath.Join(dir, ".git")
	if err := os.RemoveAll(gitDir); err != nil {
		return errs.Wrapf(err, errs.IO, "cannot remove %q", gitDir)
	}

	return nil
}
