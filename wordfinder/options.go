package wordfinder

// DefaultLimit is the number of ranked matches returned when no
// WithLimit option is given.
const DefaultLimit = 10

const panicLimitInvalid = "wordfinder: WithLimit: n must be >= 1"

// Option mutates Options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options configures a Finder.
type Options struct {
	limit int
}

// DefaultOptions returns the documented defaults: Limit=DefaultLimit.
func DefaultOptions() Options {
	return Options{limit: DefaultLimit}
}

// Limit reports the maximum number of matches a search returns.
func (o Options) Limit() int { return o.limit }

// WithLimit caps the number of ranked matches returned by a search.
// Panics if n < 1.
func WithLimit(n int) Option {
	if n < 1 {
		panic(panicLimitInvalid)
	}
	return func(o *Options) {
		o.limit = n
	}
}

// gatherOptions applies opts over DefaultOptions in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
