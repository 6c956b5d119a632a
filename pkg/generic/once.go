package generic

import "sync"

// Once returns a function that computes f exactly once and returns the same
// value on every subsequent call. Used to lazily construct repo singletons
// after the database connection exists.
func Once[T any](f func() T) func() T {
	var (
		once sync.Once
		v    T
	)
	return func() T {
		once.Do(func() { v = f() })
		return v
	}
}
