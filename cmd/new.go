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
	"fmt"
	"os"

	"github.com/dunossauro/dunoslide"
	"github.com/spf13/cobra"
)

var force bool

var newCmd = &cobra.Command{
	Use:   "new [FILE]",
	Short: "create a new presentation file from the sample",
	Long: `create a new presentation file from the sample.

The file shows every layout and can be served right away with "dunoslide host".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := args[0]
		if dunoslide.FormatFromPath(f) != dunoslide.FormatTOML {
			return fmt.Errorf("the sample is written in TOML: use a .toml file name instead of %s", f)
		}
		if fileExists(f) && !force {
			return fmt.Errorf("%s already exists. Use --force to overwrite it", f)
		}
		if err := os.WriteFile(f, dunoslide.Sample, 0o600); err != nil {
			return err
		}
		cmd.PrintErrf("Created %s\n", f)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
}
