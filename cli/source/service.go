package source

import (
	"fmt"
	"strings"

	"github.com/victor-iyi/project/cli/errs"
)

// Service identifies the hosting service owner/repo shorthands are expanded
// against.
type Service string

const (
	GitHub    Service = "github"
	GitLab    Service = "gitlab"
	BitBucket Service = "bitbucket"
)

// DefaultService is used when no hosting service was selected.
const DefaultService = GitHub

// ParseService parses a hosting service name, case-insensitively.
func ParseService(name string) (Service, error) {
	switch svc := Service(strings.ToLower(name)); svc {
	case GitHub, GitLab, BitBucket:
		return svc, nil
	}

	return "", errs.Newf(errs.Generic,
		"unknown hosting service %q (expected github, gitlab or bitbucket)", name)
}

// RemoteURL expands an owner/repo shorthand into a clone URL for the service.
func (svc Service) RemoteURL(ownerRepo string) string {
	switch svc {
	case GitLab:
		return fmt.Sprintf("https://gitlab.com/%s.git", ownerRepo)
	case BitBucket:
		owner, _, _ := strings.Cut(ownerRepo, "/")
		return fmt.Sprintf("https://%s@bitbucket.org/%s.git", owner, ownerRepo)
	default:
		return fmt.Sprintf("https://github.com/%s.git", ownerRepo)
	}
}
