/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package installer_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/spmarsden/prettylog/cmd/errors"
	"github.com/spmarsden/prettylog/cmd/installer"
)

func TestSetInstallRoot(t *testing.T) {
	assert := assert.New(t)

	t.Run("test empty install root", func(t *testing.T) {
		assert.Equal(errs.ErrInstallRootNotFound, installer.SetInstallRoot(""))
	})

	t.Run("test install root does not exist", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "does-not-exist")
		assert.Equal(errs.ErrInstallRootDoesNotExist, installer.SetInstallRoot(missing))
	})

	t.Run("test valid install root", func(t *testing.T) {
		root := t.TempDir()
		assert.Nil(installer.SetInstallRoot(root))
		assert.True(filepath.IsAbs(installer.Installation.RootDir))
		assert.Equal(filepath.Join(installer.Installation.RootDir, "venv"), installer.Installation.VenvDir)
		assert.Equal(filepath.Join(installer.Installation.RootDir, "version.txt"), installer.Installation.VersionFile)
	})

	t.Run("test relative install root is made absolute", func(t *testing.T) {
		root := t.TempDir()
		cwd, err := os.Getwd()
		assert.Nil(err)
		defer func() {
			assert.Nil(os.Chdir(cwd))
		}()
		assert.Nil(os.Chdir(root))

		assert.Nil(installer.SetInstallRoot("."))
		assert.True(filepath.IsAbs(installer.Installation.RootDir))
	})
}

func TestDefaultInstallRoot(t *testing.T) {
	assert := assert.New(t)

	// The test binary is a real executable, so this should always resolve
	root := installer.DefaultInstallRoot()
	assert.NotEmpty(root)
	assert.True(filepath.IsAbs(root))
}

func TestPipBin(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	assert.Nil(installer.SetInstallRoot(root))

	pip := installer.Installation.PipBin()
	assert.True(strings.HasPrefix(pip, installer.Installation.VenvDir))
	if runtime.GOOS == "windows" {
		assert.Equal("pip.exe", filepath.Base(pip))
	} else {
		assert.Equal("pip", filepath.Base(pip))
	}
}
