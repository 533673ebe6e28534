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
package gitload

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available on PATH")
	}
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com")
		out, err := cmd.CombinedOutput()
		require.NoErrorf(t, err, "git %v: %s", args, out)
	}
	run("init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widgets.py"), []byte("def resize():\n    pass\n"), 0o644))
	run("add", ".")
	run("commit", "-q", "-m", "initial")
	run("tag", "v1.0.0")
	return dir
}

func TestGitCheckoutCheckoutRefMaterializesTag(t *testing.T) {
	requireGit(t)
	repo := initRepo(t)

	dir, cleanup, err := GitCheckout{}.CheckoutRef(context.Background(), repo, "v1.0.0")
	require.NoError(t, err)
	defer cleanup()

	contents, err := os.ReadFile(filepath.Join(dir, "widgets.py"))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "def resize")
}

func TestGitCheckoutCheckoutRefUnknownRefReturnsGitError(t *testing.T) {
	requireGit(t)
	repo := initRepo(t)

	_, _, err := GitCheckout{}.CheckoutRef(context.Background(), repo, "does-not-exist")

	require.Error(t, err)
	var gitErr *GitError
	require.True(t, errors.As(err, &gitErr))
	assert.Equal(t, "worktree add", gitErr.Op)
	assert.Equal(t, "does-not-exist", gitErr.Ref)
	assert.Contains(t, gitErr.Error(), "does-not-exist")
}

func TestGitErrorUnwrapReturnsCause(t *testing.T) {
	cause := errors.New("boom")
	err := &GitError{Op: "mkdtemp", Ref: "v1.0.0", Cause: cause}

	assert.ErrorIs(t, err, cause)
}

func TestGitErrorErrorIncludesOutputWhenPresent(t *testing.T) {
	err := &GitError{Op: "worktree add", Ref: "v1.0.0", Cause: errors.New("exit 128"), Output: "fatal: bad ref"}

	assert.Contains(t, err.Error(), "fatal: bad ref")
}
