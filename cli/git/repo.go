package git

import (
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/victor-iyi/project/cli/errs"
)

// Init initializes a fresh repository in dir. A non-empty branch becomes the
// initial HEAD, otherwise the default is kept.
func Init(dir string, branch string) error {
	opts := gogit.PlainInitOptions{}
	if branch != "" {
		opts.InitOptions = gogit.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(branch),
		}
	}

	if _, err := gogit.PlainInitWithOptions(dir, &opts); err != nil {
		return errs.Wrapf(err, errs.Git, "cannot initialize repository in %q", dir)
	}

	return nil
}

// DiscoverAuthor reads the author identity from the global git configuration,
// falling back to the NAME/USERNAME and EMAIL environment variables. Values
// that cannot be discovered are empty.
func DiscoverAuthor() (name string, email string) {
	if cfg, err := config.LoadConfig(config.GlobalScope); err == nil {
		name = cfg.User.Name
		email = cfg.User.Email
	}

	if name == "" {
		if name = os.Getenv("NAME"); name == "" {
			name = os.Getenv("USERNAME")
		}
	}
	if email == "" {
		email = os.Getenv("EMAIL")
	}

	return name, email
}
