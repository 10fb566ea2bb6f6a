package credbind

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// BindAll executes several bindings for one build step.
//
// Variable collisions between the configured names are rejected before
// any binding runs. Bindings then bind in order; the first failure
// unbinds everything already bound and returns that binding's error.
// Collisions on the fixed wrapper variables, which Variables does not
// cover, surface while merging and unwind the same way.
//
// The combined Bound merges the environments in bind order, and its
// Unbind releases every binding, attempting all of them even when one
// fails and combining their errors.
func BindAll(ctx context.Context, bc BindContext, bindings ...Binding) (*Bound, error) {
	if err := CheckVariables(bindings...); err != nil {
		return nil, err
	}

	var bound []*Bound
	unwind := func() {
		for i := len(bound) - 1; i >= 0; i-- {
			if err := bound[i].Unbind(); err != nil {
				bc.logger().Warn("unbind after failed bind", "error", err)
			}
		}
	}

	env := newEnvironment()
	for _, b := range bindings {
		one, err := b.Bind(ctx, bc)
		if err != nil {
			unwind()
			return nil, err
		}
		bound = append(bound, one)

		for _, name := range one.Env.Names() {
			if _, ok := env.Get(name); ok {
				unwind()
				return nil, &ConfigError{
					Binding: string(b.Kind()),
					Reason:  fmt.Sprintf("variable %q exported by more than one binding", name),
				}
			}
			value, _ := one.Env.Get(name)
			env.set(name, value)
		}
	}

	all := bound
	return &Bound{
		Env: env,
		unbind: func() error {
			var errs *multierror.Error
			for _, b := range all {
				errs = multierror.Append(errs, b.Unbind())
			}
			return errs.ErrorOrNil()
		},
	}, nil
}
