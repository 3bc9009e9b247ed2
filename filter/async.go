package filter

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MatchAsync calls the callback matching the kind of n, without recursing.
// Unlike Match it returns ErrUnhandledNode for foreign node kinds.
func MatchAsync[F Filter, R any](
	ctx context.Context,
	n Node[F],
	onCombination func(context.Context, *Combination[F]) (R, error),
	onInverted func(context.Context, *Inverted[F]) (R, error),
	onLeaf func(context.Context, *Leaf[F]) (R, error),
) (R, error) {
	switch n := n.(type) {
	case *Combination[F]:
		return onCombination(ctx, n)
	case *Inverted[F]:
		return onInverted(ctx, n)
	case *Leaf[F]:
		return onLeaf(ctx, n)
	}
	var zero R
	return zero, unhandled(n)
}

// MapAsync is Map with a leaf function that may block or fail. Sibling
// subtrees are mapped concurrently; the first error cancels the rest.
func MapAsync[F, G Filter](ctx context.Context, n Node[F], f func(context.Context, F) (G, error)) (Node[G], error) {
	return BindAsync(ctx, n, func(ctx context.Context, filter F) (Node[G], error) {
		g, err := f(ctx, filter)
		if err != nil {
			return nil, err
		}
		return NewLeaf(g), nil
	})
}

// BindAsync is Bind with a leaf function that may block or fail. Sibling
// subtrees are bound concurrently; the first error cancels the rest.
func BindAsync[F, G Filter](ctx context.Context, n Node[F], f func(context.Context, F) (Node[G], error)) (Node[G], error) {
	return MatchAsync(ctx, n,
		func(ctx context.Context, c *Combination[F]) (Node[G], error) {
			nodes, err := eachAsync(ctx, c.nodes, func(ctx context.Context, child Node[F]) (Node[G], error) {
				return BindAsync(ctx, child, f)
			})
			if err != nil {
				return nil, err
			}
			return &Combination[G]{op: c.op, nodes: nodes}, nil
		},
		func(ctx context.Context, i *Inverted[F]) (Node[G], error) {
			child, err := BindAsync(ctx, i.child, f)
			if err != nil {
				return nil, err
			}
			return Not(child), nil
		},
		func(ctx context.Context, l *Leaf[F]) (Node[G], error) {
			return f(ctx, l.filter)
		},
	)
}

// RelaxAsync is Relax with leaf functions that may block or fail.
func RelaxAsync[F Filter](ctx context.Context, n Node[F], relax, restrict func(context.Context, F) (Node[F], error)) (Node[F], error) {
	res, err := MatchAsync(ctx, n,
		func(ctx context.Context, c *Combination[F]) (Node[F], error) {
			nodes, err := eachAsync(ctx, c.nodes, func(ctx context.Context, child Node[F]) (Node[F], error) {
				return RelaxAsync(ctx, child, relax, restrict)
			})
			if err != nil {
				return nil, err
			}
			return Combine(c.op, nodes...), nil
		},
		func(ctx context.Context, i *Inverted[F]) (Node[F], error) {
			child, err := RestrictAsync(ctx, i.child, relax, restrict)
			if err != nil {
				return nil, err
			}
			return Not(child), nil
		},
		func(ctx context.Context, l *Leaf[F]) (Node[F], error) {
			return relax(ctx, l.filter)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.Collapse(), nil
}

// RestrictAsync is Restrict with leaf functions that may block or fail.
func RestrictAsync[F Filter](ctx context.Context, n Node[F], relax, restrict func(context.Context, F) (Node[F], error)) (Node[F], error) {
	return RelaxAsync(ctx, n, restrict, relax)
}

// GetPartialAsync is GetPartial with a predicate that may block or fail.
func GetPartialAsync[F Filter](ctx context.Context, n Node[F], pred func(context.Context, F) (bool, error)) (Node[F], error) {
	keep := func(or Node[F]) func(context.Context, F) (Node[F], error) {
		return func(ctx context.Context, f F) (Node[F], error) {
			ok, err := pred(ctx, f)
			switch {
			case err != nil:
				return nil, err
			case ok:
				return NewLeaf(f), nil
			}
			return or, nil
		}
	}
	return RelaxAsync(ctx, n, keep(True[F]()), keep(False[F]()))
}

// eachAsync runs f on every node concurrently and returns the results in
// the order of nodes.
func eachAsync[F Filter, R any](ctx context.Context, nodes []Node[F], f func(context.Context, Node[F]) (R, error)) ([]R, error) {
	results := make([]R, len(nodes))
	g, ctx := errgroup.WithContext(ctx)
	for i, n := range nodes {
		g.Go(func() error {
			res, err := f(ctx, n)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
