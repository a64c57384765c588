/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

// Package format provides prettylog's log formatter. Lines look like
// "2006-01-02 15:04:05 ┆ INFO     ┆ message", coloured per level when
// the formatter is created with colour enabled.
package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
)

// Separator between the timestamp, level and message columns
const Separator = " ┆ "

// TimestampLayout is the layout used for the timestamp column
const TimestampLayout = "2006-01-02 15:04:05"

// Formatter formats logrus entries the prettylog way
type Formatter struct {
	// Colour enables per-level colouring of the whole line
	Colour bool

	// Verbose prefixes the message with the caller as "[file:line]".
	// It requires logrus' SetReportCaller(true) to have any effect.
	Verbose bool
}

var levelColours = map[log.Level]*color.Color{
	log.TraceLevel: color.New(color.FgHiBlack),
	log.DebugLevel: color.New(color.FgHiBlack),
	log.WarnLevel:  color.New(color.FgYellow),
	log.ErrorLevel: color.New(color.FgRed),
	log.FatalLevel: color.New(color.FgRed, color.Bold),
	log.PanicLevel: color.New(color.FgRed, color.Bold),
}

// Format renders a single log entry
func (f *Formatter) Format(entry *log.Entry) ([]byte, error) {
	var message bytes.Buffer

	if f.Verbose && entry.HasCaller() {
		fmt.Fprintf(&message, "[%s:%d] ", filepath.Base(entry.Caller.File), entry.Caller.Line)
	}

	message.WriteString(entry.Message)

	// Extra fields go after the message, in a stable order
	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for key := range entry.Data {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&message, " %s=%v", key, entry.Data[key])
		}
	}

	line := entry.Time.Format(TimestampLayout) +
		Separator +
		fmt.Sprintf("%-8s", strings.ToUpper(entry.Level.String())) +
		Separator +
		message.String()

	if f.Colour {
		if c, ok := levelColours[entry.Level]; ok {
			c.EnableColor()
			line = c.Sprint(line)
		}
	}

	return []byte(line + "\n"), nil
}
