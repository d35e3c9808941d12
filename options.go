package argkmin

import "github.com/mbatoul/argkmin/internal/obslog"

// Strategy selects which parallelization driver ArgKMin dispatches to.
type Strategy int

const (
	// StrategyAuto picks chunk_on_X or chunk_on_Y from the n/threads/
	// chunk_size heuristic (see ArgKMin).
	StrategyAuto Strategy = iota
	// StrategyChunkOnX forces the chunk_on_X driver regardless of shape.
	StrategyChunkOnX
	// StrategyChunkOnY forces the chunk_on_Y driver regardless of shape.
	StrategyChunkOnY
)

// defaultChunkSize matches the 256-row tile width used throughout testing
// and tuning of the reference implementation this module's behavior is
// specified against.
const defaultChunkSize = 256

// minChunkSize is the floor chunk_size is clamped to: below this, tiling
// overhead dominates the work done per tile.
const minChunkSize = 20

type config struct {
	chunkSize      int
	strategy       Strategy
	returnDistance bool
	threads        int
	logger         obslog.Logger
}

func defaultConfig() config {
	return config{
		chunkSize:      defaultChunkSize,
		strategy:       StrategyAuto,
		returnDistance: false,
		threads:        0,
		logger:         obslog.Noop(),
	}
}

// Option configures a single ArgKMin call.
type Option func(*config)

// WithChunkSize overrides the tile width used to partition X and Y. Values
// below minChunkSize are clamped up to it.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n < minChunkSize {
			n = minChunkSize
		}
		c.chunkSize = n
	}
}

// WithStrategy forces a specific parallelization driver instead of letting
// ArgKMin choose one from the input shape.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithReturnDistance requests that Result.Distances be populated via the
// exact-distance recomputation pass. Without it, Result.Distances is nil
// and only the exact-distance pass is skipped — the reduced distances used
// internally for ranking are never exposed, since they are not true
// Euclidean distances.
func WithReturnDistance(v bool) Option {
	return func(c *config) {
		c.returnDistance = v
	}
}

// WithThreads overrides the thread-count oracle. A non-positive value (the
// default) resolves to runtime.GOMAXPROCS(0) at call time.
func WithThreads(n int) Option {
	return func(c *config) {
		c.threads = n
	}
}

// WithLogger installs a Logger that receives one Debugf call per ArgKMin
// invocation, recording the resolved strategy and thread count. The default
// is a no-op logger.
func WithLogger(l obslog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
