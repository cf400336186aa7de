package blend

// Source is a deferred producer of one weighted input. The aggregator
// invokes it at evaluation time, not registration time, so a source that
// samples live input observes the instant the blend is computed.
type Source[T Blendable[T]] func() Input[T]

// Control blends weighted inputs from an ordered set of sources into one
// output state. Sources are invoked in registration order; registering
// the same source twice counts its contribution twice.
type Control[T Blendable[T]] struct {
	sources []Source[T]
}

// New creates a Control with zero sources.
func New[T Blendable[T]]() *Control[T] {
	return &Control[T]{sources: make([]Source[T], 0)}
}

// AddSource appends a source to the registration order.
func (c *Control[T]) AddSource(src Source[T]) {
	c.sources = append(c.sources, src)
}

// WithSource appends a source and returns the Control for chaining.
func (c *Control[T]) WithSource(src Source[T]) *Control[T] {
	c.AddSource(src)
	return c
}

// Len returns the number of registered sources.
func (c *Control[T]) Len() int {
	return len(c.sources)
}

// Evaluate invokes every registered source exactly once, in registration
// order, scales each input by its weight, and folds the results with Add.
// It reports false when no sources are registered; callers must decide
// what "no output this cycle" means (hold last, command neutral). Nothing
// is cached between calls, so every call re-samples every source.
func (c *Control[T]) Evaluate() (T, bool) {
	var out T
	if len(c.sources) == 0 {
		return out, false
	}

	out = c.sources[0]().Scaled()
	for _, src := range c.sources[1:] {
		out = out.Add(src().Scaled())
	}
	return out, true
}
