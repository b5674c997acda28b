package fperr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithLocation(loc Location) Option {
	return func(e *Error) { e.Location = &loc }
}
