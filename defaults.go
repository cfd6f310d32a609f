package dunoslide

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dunossauro/dunoslide/config"
	"github.com/google/cel-go/cel"
)

var defaultsEnv = mustDefaultsEnv()

func mustDefaultsEnv() *cel.Env {
	env, err := cel.NewEnv(
		cel.Variable("page", cel.IntType),
		cel.Variable("total", cel.IntType),
		cel.Variable("layout", cel.StringType),
		cel.Variable("isFirst", cel.BoolType),
		cel.Variable("isLast", cel.BoolType),
	)
	if err != nil {
		panic(err)
	}
	return env
}

type defaultCondition struct {
	src           string
	prg           cel.Program
	background    string
	verticalAlign string
}

func compileDefault(c config.DefaultCondition) (*defaultCondition, error) {
	if c.Background != "" && !slices.Contains(Backgrounds, Background(c.Background)) {
		return nil, fmt.Errorf("invalid default background %q: should be %s", c.Background, orList(Backgrounds))
	}
	if c.VerticalAlign != "" && !slices.Contains(VerticalAligns, VerticalAlign(c.VerticalAlign)) {
		return nil, fmt.Errorf("invalid default verticalAlign %q: should be %s", c.VerticalAlign, orList(VerticalAligns))
	}
	ast, issues := defaultsEnv.Compile(c.If)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("failed to compile condition %q: %w", c.If, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("condition %q must evaluate to bool, got %s", c.If, ast.OutputType())
	}
	prg, err := defaultsEnv.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to create program for condition %q: %w", c.If, err)
	}
	return &defaultCondition{
		src:           c.If,
		prg:           prg,
		background:    c.Background,
		verticalAlign: c.VerticalAlign,
	}, nil
}

func (c *defaultCondition) match(vars map[string]any) (bool, error) {
	out, _, err := c.prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate condition %q: %w", c.src, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("condition %q did not evaluate to bool", c.src)
	}
	return b, nil
}

// applyDefaults fills background and vertical_align of raw slides from the
// first matching condition. Fields already set are never overwritten.
func (e *Engine) applyDefaults(slides []any) error {
	if len(e.defaults) == 0 {
		return nil
	}
	total := len(slides)
	for i, s := range slides {
		raw, ok := toMap(s)
		if !ok {
			continue
		}
		layout, _ := raw["layout"].(string)
		vars := map[string]any{
			"page":    int64(i + 1),
			"total":   int64(total),
			"layout":  layout,
			"isFirst": i == 0,
			"isLast":  i == total-1,
		}
		for _, c := range e.defaults {
			ok, err := c.match(vars)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if _, set := raw["background"]; !set && c.background != "" {
				raw["background"] = c.background
			}
			if _, set := raw["vertical_align"]; !set && c.verticalAlign != "" && layout == string(LayoutDefault) {
				raw["vertical_align"] = c.verticalAlign
			}
			e.logger.Debug("applied slide defaults", slog.Int("page", i+1), slog.String("if", c.src))
			break
		}
		slides[i] = raw
	}
	return nil
}
