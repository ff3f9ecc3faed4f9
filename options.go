package seqlsh

type indexConfig struct {
	seed uint64
}

// IndexOption is a functional option for configuring an LshIndex.
type IndexOption func(*indexConfig)

// WithSeed sets the band-folding seed. Indexes and queries only produce
// comparable band keys under the same seed; the default suits a single
// dataset, and distinct seeds isolate unrelated ones.
func WithSeed(seed uint64) IndexOption {
	return func(c *indexConfig) {
		c.seed = seed
	}
}

type coordinatorConfig struct {
	workers int
}

// CoordinatorOption is a functional option for the parallel build and query
// coordinators.
type CoordinatorOption func(*coordinatorConfig)

// WithWorkers sets the number of parallel workers. Zero or negative selects
// runtime.NumCPU().
func WithWorkers(n int) CoordinatorOption {
	return func(c *coordinatorConfig) {
		c.workers = n
	}
}
