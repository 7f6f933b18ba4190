// Package options implements the functional option pattern shared by the fit,
// calibration, archive and server configurations.
package options

// Option configures a target of type T. T is normally a pointer to a config struct.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) Option[T] {
	return Func[T](fn)
}

// NoError creates an option from a setter that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return Func[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Validator is implemented by configs that check themselves after all options ran.
type Validator interface {
	Validate() error
}

// Build copies defaults, applies opts to the copy and validates the result when
// *C implements Validator. The defaults value is never modified.
func Build[C any](defaults C, opts ...Option[*C]) (C, error) {
	cfg := defaults
	if err := Apply(&cfg, opts...); err != nil {
		return defaults, err
	}

	if v, ok := any(&cfg).(Validator); ok {
		if err := v.Validate(); err != nil {
			return defaults, err
		}
	}

	return cfg, nil
}
