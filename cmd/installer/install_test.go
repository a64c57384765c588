/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package installer_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	errs "github.com/spmarsden/prettylog/cmd/errors"
	"github.com/spmarsden/prettylog/cmd/installer"
)

// fakeRunner stands in for the Python tooling. Creating the venv makes
// the directory appear, installing the package drops a marker into it,
// mirroring the observable effects of the real tools.
type fakeRunner struct {
	calls      [][]string
	failVenv   bool
	failPip    bool
	venvAtFail string
}

func (f *fakeRunner) Run(name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))

	joined := strings.Join(args, " ")

	if strings.Contains(joined, "-m venv") {
		venvDir := args[len(args)-1]
		if f.failVenv {
			// Remember what the filesystem looked like when creation failed
			if _, err := os.Stat(venvDir); os.IsNotExist(err) {
				f.venvAtFail = "absent"
			} else {
				f.venvAtFail = "present"
			}
			return errors.New("exit status 1")
		}
		return os.MkdirAll(filepath.Join(venvDir, "bin"), 0755)
	}

	if strings.HasPrefix(joined, "install") {
		if f.failPip {
			return errors.New("exit status 1")
		}
		venvDir := filepath.Dir(filepath.Dir(name))
		return os.WriteFile(filepath.Join(venvDir, "installed.txt"), []byte("editable"), 0600)
	}

	return nil
}

func useFakeRunner(t *testing.T) *fakeRunner {
	fake := &fakeRunner{}
	previous := installer.Runner
	installer.Runner = fake
	t.Cleanup(func() {
		installer.Runner = previous
	})
	return fake
}

func captureLog(t *testing.T) *bytes.Buffer {
	out := bytes.NewBufferString("")
	log.SetOutput(out)
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
	})
	return out
}

func setUpInstallRoot(t *testing.T, version string) string {
	root := t.TempDir()
	if version != "" {
		assert.Nil(t, os.WriteFile(filepath.Join(root, "version.txt"), []byte(version+"\n"), 0600))
	}
	assert.Nil(t, installer.SetInstallRoot(root))
	return root
}

func TestInstall(t *testing.T) {
	assert := assert.New(t)

	t.Run("test install announces the version and populates the venv", func(t *testing.T) {
		logOut := captureLog(t)
		fake := useFakeRunner(t)
		root := setUpInstallRoot(t, "1.2.0")

		assert.Nil(installer.Install())
		assert.Contains(logOut.String(), "1.2.0")
		assert.DirExists(filepath.Join(root, "venv"))
		assert.FileExists(filepath.Join(root, "venv", "installed.txt"))

		// venv creation first, pip install second
		assert.Len(fake.calls, 2)
		assert.Contains(strings.Join(fake.calls[0], " "), "-m venv")
		assert.Contains(strings.Join(fake.calls[1], " "), "--editable")
	})

	t.Run("test install twice leaves no stale state", func(t *testing.T) {
		captureLog(t)
		useFakeRunner(t)
		root := setUpInstallRoot(t, "1.2.0")

		assert.Nil(installer.Install())

		// Pollute the environment, a second install must wipe it
		stale := filepath.Join(root, "venv", "stale.txt")
		assert.Nil(os.WriteFile(stale, []byte("old"), 0600))

		assert.Nil(installer.Install())
		assert.NoFileExists(stale)
		assert.FileExists(filepath.Join(root, "venv", "installed.txt"))
	})

	t.Run("test install with missing version file has no side effects", func(t *testing.T) {
		captureLog(t)
		fake := useFakeRunner(t)
		root := setUpInstallRoot(t, "")

		// A pre-existing environment must survive the early failure
		assert.Nil(os.MkdirAll(filepath.Join(root, "venv"), 0755))
		marker := filepath.Join(root, "venv", "keep.txt")
		assert.Nil(os.WriteFile(marker, []byte("keep"), 0600))

		assert.Equal(errs.ErrVersionFileUnreadable, installer.Install())
		assert.FileExists(marker)
		assert.Empty(fake.calls)
	})

	t.Run("test old venv is gone before creation starts", func(t *testing.T) {
		captureLog(t)
		fake := useFakeRunner(t)
		fake.failVenv = true
		root := setUpInstallRoot(t, "1.2.0")

		assert.Nil(os.MkdirAll(filepath.Join(root, "venv"), 0755))

		assert.Equal(errs.ErrFailedCreatingEnvironment, installer.Install())
		assert.Equal("absent", fake.venvAtFail)
		assert.NoDirExists(filepath.Join(root, "venv"))
	})

	t.Run("test failing package install surfaces the install error", func(t *testing.T) {
		captureLog(t)
		fake := useFakeRunner(t)
		fake.failPip = true
		root := setUpInstallRoot(t, "1.2.0")

		assert.Equal(errs.ErrFailedInstallingPackage, installer.Install())

		// No rollback: the freshly created environment stays behind
		assert.DirExists(filepath.Join(root, "venv"))
	})
}
