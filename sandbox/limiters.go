package sandbox

// noneLimiter is linked in by builds declared to need no restriction.
type noneLimiter struct{}

func (noneLimiter) backend() Backend        { return None }
func (noneLimiter) processInit() error      { return nil }
func (noneLimiter) lockdownStdin() error    { return nil }
func (noneLimiter) describe() []PhasePolicy { return emptyPhases() }

// unsupportedLimiter fails closed on targets without a backend.
type unsupportedLimiter struct{}

func (unsupportedLimiter) backend() Backend        { return Unsupported }
func (unsupportedLimiter) processInit() error      { return ErrUnsupportedPlatform }
func (unsupportedLimiter) lockdownStdin() error    { return ErrUnsupportedPlatform }
func (unsupportedLimiter) describe() []PhasePolicy { return emptyPhases() }
