package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dunossauro/dunoslide"
	"github.com/dunossauro/dunoslide/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "validate the structure of a presentation file",
	Long:  `validate the structure of a presentation file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := args[0]
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		e, err := newEngine(cfg, newLogger(), "")
		if err != nil {
			return err
		}
		p, err := e.Load(f)
		if err != nil {
			if !reportInvalid(cmd.ErrOrStderr(), f, err) {
				return err
			}
			return errReported
		}
		cmd.Printf("%s valid: %s (%d slides)\n", green("✓"), f, len(p.Slides))
		return nil
	},
}

// reportInvalid writes a report for errors caused by the document itself.
// It returns false for any other error.
func reportInvalid(w io.Writer, f string, err error) bool {
	var (
		verr *dunoslide.ValidationError
		serr *dunoslide.SyntaxError
	)
	switch {
	case errors.Is(err, dunoslide.ErrDocumentNotFound):
		_, _ = fmt.Fprintf(w, "%s file not found: %s\n", red("✗"), f)
	case errors.As(err, &serr):
		_, _ = fmt.Fprintf(w, "%s syntax error in %s: %v\n", red("✗"), f, serr.Err)
	case errors.As(err, &verr):
		_, _ = fmt.Fprintf(w, "%s invalid: %s\n\n", red("✗"), f)
		for _, fe := range verr.Errors {
			_, _ = io.WriteString(w, formatFieldError(fe))
			_, _ = io.WriteString(w, "\n")
		}
	default:
		return false
	}
	return true
}

func formatFieldError(fe *dunoslide.FieldError) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "  Field:    %s\n", fe.Loc(" → "))
	_, _ = fmt.Fprintf(&b, "  Error:    %s\n", fe.Message)
	if fe.Expected != "" {
		_, _ = fmt.Fprintf(&b, "  Expected: %s\n", fe.Expected)
	}
	if fe.Given != nil {
		_, _ = fmt.Fprintf(&b, "  Given:    %v\n", fe.Given)
	}
	if fe.Hint != "" {
		_, _ = fmt.Fprintf(&b, "  Hint:     %s\n", fe.Hint)
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
