/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package format

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/spmarsden/prettylog/cmd/utils"
)

// FileHook duplicates every log entry into a file, uncoloured and with the
// caller included, regardless of the stream log level
type FileHook struct {
	file      *os.File
	formatter *Formatter
}

// NewFileHook opens (or creates) logFile for appending, creating parent
// directories as needed
func NewFileHook(logFile string) (*FileHook, error) {
	if err := utils.EnsureDir(filepath.Dir(logFile)); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return nil, err
	}

	return &FileHook{
		file:      file,
		formatter: &Formatter{Colour: false, Verbose: true},
	}, nil
}

// Levels makes the hook fire on every level
func (h *FileHook) Levels() []log.Level {
	return log.AllLevels
}

// Fire writes the formatted entry to the log file. A closed hook
// swallows entries instead of erroring, since logrus offers no way to
// unregister it.
func (h *FileHook) Fire(entry *log.Entry) error {
	if h.file == nil {
		return nil
	}
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.file.Write(line)
	return err
}

// Close closes the underlying log file
func (h *FileHook) Close() error {
	file := h.file
	h.file = nil
	return file.Close()
}
