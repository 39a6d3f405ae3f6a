package problem

import "math/rand"

// synthConfig holds resolved synthesis parameters. Mirrors the teacher's
// builder.builderConfig: an unexported struct populated by functional
// options and a documented defaults table (see builder/options.go and
// builder/config.go in the teacher).
type synthConfig struct {
	nbClients       int
	nbVehicles      int
	vehicleCapacity int64
	gridSize        int
	rng             *rand.Rand
	windowSpan      int64
	serviceTime     int64
}

// SynthOption customizes GenerateInstance, in the same functional-options
// idiom as the teacher's builder.BuilderOption (WithSeed/WithRand/...):
// constructors validate and panic on nonsensical values so algorithms
// themselves never need to defend against malformed configuration.
type SynthOption func(*synthConfig)

// WithSeed makes instance generation reproducible, mirroring
// builder.WithSeed.
func WithSeed(seed int64) SynthOption {
	return func(c *synthConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithGridSize bounds client coordinates to [0, size]×[0, size].
func WithGridSize(size int) SynthOption {
	if size <= 0 {
		panic("problem: WithGridSize(size<=0)")
	}
	return func(c *synthConfig) { c.gridSize = size }
}

// WithWindowSpan sets the width of each client's randomly placed time
// window.
func WithWindowSpan(span int64) SynthOption {
	if span <= 0 {
		panic("problem: WithWindowSpan(span<=0)")
	}
	return func(c *synthConfig) { c.windowSpan = span }
}

// WithServiceTime sets the fixed per-client service duration used by the
// synthetic instance.
func WithServiceTime(service int64) SynthOption {
	if service < 0 {
		panic("problem: WithServiceTime(service<0)")
	}
	return func(c *synthConfig) { c.serviceTime = service }
}

// GenerateInstance builds a random-but-deterministic CVRPTW instance with
// nbClients clients (plus the depot), nbVehicles vehicles of the given
// capacity, and Euclidean distances on a square grid. It exists purely as
// test/benchmark tooling, letting property tests exercise Route/TWS
// invariants at scale beyond the single fixed OkSmall fixture, and is
// grounded on the teacher's builder package: the same
// functional-options-over-an-RNG idiom that builder/impl_random_sparse.go
// and builder/impl_grid.go use to synthesize graphs deterministically from
// a seed.
func GenerateInstance(nbClients, nbVehicles int, vehicleCapacity int64, opts ...SynthOption) (*Data, error) {
	cfg := &synthConfig{
		nbClients:       nbClients,
		nbVehicles:      nbVehicles,
		vehicleCapacity: vehicleCapacity,
		gridSize:        1000,
		rng:             rand.New(rand.NewSource(1)),
		windowSpan:      500,
		serviceTime:     10,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	clients := make([]Client, nbClients+1)
	clients[0] = Client{X: cfg.gridSize / 2, Y: cfg.gridSize / 2, TWLate: 1 << 30}
	for i := 1; i <= nbClients; i++ {
		early := int64(cfg.rng.Intn(1000))
		clients[i] = Client{
			X:       cfg.rng.Intn(cfg.gridSize + 1),
			Y:       cfg.rng.Intn(cfg.gridSize + 1),
			Demand:  1 + int64(cfg.rng.Intn(9)),
			Service: cfg.serviceTime,
			TWEarly: early,
			TWLate:  early + cfg.windowSpan,
		}
	}

	return NewEuclidean(clients, nbVehicles, vehicleCapacity)
}
