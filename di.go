package datastore

import (
	"fmt"

	"go.uber.org/fx"
)

// NewModule creates an Fx module supplying a named *Store bound to root.
// The name is used as both the Fx module name and the DI named tag for the
// Store, so several stores with different roots can coexist in one graph.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, root string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() *Store {
					return Open(root, opts...)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
