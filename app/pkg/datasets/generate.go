package datasets

import (
	"fmt"
	"math"

	assetshandler "maxsubarray/app/pkg/assets-handler"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// generatorEnv is the environment visible to generate expressions: I is the
// element index and N the dataset length.
type generatorEnv struct {
	I int
	N int
}

// compileGenerator only forces a float result for float64 datasets. int64
// datasets check the result themselves so a fractional or out of range
// float is an error instead of a silent conversion.
func compileGenerator(exprStr, typ string) (*vm.Program, error) {
	opts := []expr.Option{expr.Env(generatorEnv{})}
	if typ == assetshandler.TypeFloat64 {
		opts = append(opts, expr.AsFloat64())
	}

	program, err := expr.Compile(exprStr, opts...)
	if err != nil {
		return nil, fmt.Errorf("error compiling generate expression %q: %w", exprStr, err)
	}
	return program, nil
}

func (d *Dataset) generate(cfg *assetshandler.GenerateCfg) error {
	program, err := compileGenerator(cfg.Expr, d.Type)
	if err != nil {
		return err
	}

	if d.Type == assetshandler.TypeFloat64 {
		d.Floats = make([]float64, cfg.Length)
	} else {
		d.Ints = make([]int64, cfg.Length)
	}

	env := generatorEnv{N: cfg.Length}
	for i := 0; i < cfg.Length; i++ {
		env.I = i
		result, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error running generate expression at I=%d: %w", i, err)
		}

		switch r := result.(type) {
		case int:
			if d.Type == assetshandler.TypeFloat64 {
				d.Floats[i] = float64(r)
			} else {
				d.Ints[i] = int64(r)
			}
		case float64:
			if d.Type == assetshandler.TypeFloat64 {
				d.Floats[i] = r
				continue
			}
			v, err := floatToInt64(r)
			if err != nil {
				return fmt.Errorf("generate expression at I=%d: %w", i, err)
			}
			d.Ints[i] = v
		default:
			return fmt.Errorf("generate expression returned %T at I=%d, want a number", result, i)
		}
	}

	return nil
}

// floatToInt64 accepts only whole floats inside the int64 range.
func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64+1 {
		return 0, fmt.Errorf("%v is outside the int64 range", f)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	return int64(f), nil
}
