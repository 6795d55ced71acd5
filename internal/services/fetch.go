package services

import "context"

// fetchInto returns an errgroup task that stores the result of fn in dst, or
// its error in errp. The task itself never fails so that one failed fetch
// does not stop the others.
func fetchInto[T any](ctx context.Context, dst *T, errp *error, fn func(context.Context) (T, error)) func() error {
	return func() error {
		v, err := fn(ctx)
		if err != nil {
			*errp = err
			return nil
		}
		*dst = v
		return nil
	}
}

// Card is one independently loaded panel of a read-only screen. A failed load
// leaves Data at its zero value and sets Notice.
type Card[T any] struct {
	Data   T
	Notice Notice

	err error
}

func (c *Card[T]) Err() error { return c.err }

func (c *Card[T]) load(ctx context.Context, fn func(context.Context) (T, error)) func() error {
	return fetchInto(ctx, &c.Data, &c.err, fn)
}

// settle turns a load error into the card notice.
func (c *Card[T]) settle(screen, fallback string) {
	if c.err != nil {
		c.Notice = errorNotice(screen, fallback, c.err)
	}
}
