package cache

// startSweeper launches the background expiration worker when a sweep
// interval is configured. Lazy expiration alone keeps correctness (stale
// entries are never returned); the sweeper keeps memory from accumulating
// entries that are expired but never looked up again.
func (c *Cache) startSweeper() {
	if c.sweepEvery <= 0 {
		return
	}
	ticker := c.clock.NewTicker(c.sweepEvery)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				c.SweepExpired()
			case <-c.stopSweep:
				return
			}
		}
	}()
}
