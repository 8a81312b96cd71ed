package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func commitFiles(t *testing.T, repo *git.Repository, dir string, files map[string]string, msg string) string {
	t.Helper()

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	for rel, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := wt.Add(rel); err != nil {
			t.Fatal(err)
		}
	}

	h, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatal(err)
	}

	return h.String()
}

func checkRange(t *testing.T, dir, base, head string) (string, error) {
	t.Helper()

	viper.Set("base", base)
	viper.Set("head", head)
	viper.Set("repo_root", dir)
	viper.Set("structural_only", true)

	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	err := runCheck(cmd, nil)

	return buf.String(), err
}

// Exercises the full cobra surface, so it must run before the tests that
// seed viper directly: values placed with viper.Set would shadow the flag
// bindings under test.
func TestCheckSubcommand(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}

	base := commitFiles(t, repo, dir, map[string]string{"README.md": "hello"}, "base")
	head := commitFiles(t, repo, dir, map[string]string{"mainnet/gentx/gentx-abc.json": "{}"}, "add gentx")

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"check",
		"--base", base,
		"--head", head,
		"--repo-root", dir,
		"--structural-only",
	})

	code := Execute()

	assert.Equal(t, ExitPassed, code)
	assert.Contains(t, buf.String(), "Gentx validation passed")
}

func TestRunCheckAcceptsSingleGentx(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}

	base := commitFiles(t, repo, dir, map[string]string{"README.md": "hello"}, "base")
	head := commitFiles(t, repo, dir, map[string]string{"mainnet/gentx/gentx-abc.json": "{}"}, "add gentx")

	out, err := checkRange(t, dir, base, head)

	assert.NoError(t, err)
	assert.Contains(t, out, "Gentx validation passed")
}

func TestRunCheckRejectsGenesisChange(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}

	base := commitFiles(t, repo, dir, map[string]string{"mainnet/genesis.json": "{}"}, "base")
	head := commitFiles(t, repo, dir, map[string]string{
		"mainnet/genesis.json":         `{"tampered":true}`,
		"mainnet/gentx/gentx-abc.json": "{}",
	}, "tamper")

	out, err := checkRange(t, dir, base, head)

	assert.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, out, "genesis file modification forbidden")
}

func TestRunCheckNothingToValidate(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}

	base := commitFiles(t, repo, dir, map[string]string{"README.md": "hello"}, "base")

	out, err := checkRange(t, dir, base, base)

	assert.NoError(t, err)
	assert.Contains(t, out, "Nothing to validate")
}
