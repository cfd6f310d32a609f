/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dunossauro/dunoslide/config"
	"github.com/dunossauro/dunoslide/version"
	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

var (
	profile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "dunoslide",
	Short:         "dunoslide is a tool for creating HTML presentations from TOML or YAML",
	Long:          `dunoslide is a tool for creating HTML presentations from TOML or YAML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
}

type errorData struct {
	Command     string    `json:"command"`
	Error       string    `json:"error"`
	StackTraces any       `json:"stack_traces"`
	CreatedAt   time.Time `json:"created_at"`
	Version     string    `json:"version"`
	Revision    string    `json:"revision"`
}

func Execute() {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}
	if err != errReported {
		command := rootCmd.CommandPath()
		if cmd != nil {
			command = cmd.CommandPath()
		}
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// Write stack trace log to state directory
		d := &errorData{
			Command:     command,
			Error:       err.Error(),
			StackTraces: errors.StackTraces(err),
			CreatedAt:   time.Now(),
			Version:     version.Version,
			Revision:    version.Revision,
		}
		b, err := json.Marshal(d)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		} else {
			dumpPath := filepath.Join(config.StateHomePath(), "error.json")
			if err := os.MkdirAll(filepath.Dir(dumpPath), 0o700); err == nil {
				if err := os.WriteFile(dumpPath, b, 0o600); err != nil {
					_, _ = fmt.Fprintf(os.Stderr, "failed to write error.json to %s: %v\n", dumpPath, err)
				}
			}
		}
	}
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "", "", "profile name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs")
}
