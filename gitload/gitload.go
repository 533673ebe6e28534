/*
Copyright © 2025 Benny Powers

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package gitload is the narrow external-collaborator boundary `apitree
// check --against <ref>` uses to materialize a prior revision of a package
// before diffing against it. It shells out to the system `git` binary
// rather than linking a Git implementation, the same dependency-avoidance
// call the teacher makes for its own version-comparison tooling.
package gitload

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Checkout materializes a package at a given ref into a temporary
// directory and reports its path, for the loader to then treat as an
// ordinary search path.
type Checkout interface {
	CheckoutRef(ctx context.Context, repoPath, ref string) (dir string, cleanup func(), err error)
}

// GitCheckout shells out to `git worktree add` to materialize refs without
// disturbing the caller's working tree.
type GitCheckout struct{}

func (GitCheckout) CheckoutRef(ctx context.Context, repoPath, ref string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "apitree-checkout-*")
	if err != nil {
		return "", nil, &GitError{Op: "mkdtemp", Ref: ref, Cause: err}
	}
	cleanup := func() { os.RemoveAll(dir) }

	cmd := exec.CommandContext(ctx, "git", "-C", repoPath, "worktree", "add", "--detach", dir, ref)
	if out, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		return "", nil, &GitError{Op: "worktree add", Ref: ref, Cause: err, Output: string(out)}
	}
	return filepath.Clean(dir), cleanup, nil
}

// GitError is spec §7's `GitError`: a failure surfaced by the `git`
// collaborator process itself (missing binary, bad ref, detached-worktree
// conflict), as opposed to a problem with the loaded package.
type GitError struct {
	Op     string
	Ref    string
	Cause  error
	Output string
}

func (e *GitError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("gitload: %s %s: %v: %s", e.Op, e.Ref, e.Cause, e.Output)
	}
	return fmt.Sprintf("gitload: %s %s: %v", e.Op, e.Ref, e.Cause)
}

func (e *GitError) Unwrap() error { return e.Cause }
