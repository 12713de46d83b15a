package stats

import (
	"sync"

	"github.com/promaster-id/konstruksi-backend/internal/projects/domain"
)

// Cache memoizes a Summary keyed by the project store's version
// counter, so unchanged collections are not re-aggregated.
type Cache struct {
	mu      sync.Mutex
	version uint64
	valid   bool
	summary Summary
}

// Summary returns the cached summary when version matches the last
// computation, otherwise recomputes from the supplied list.
func (c *Cache) Summary(version uint64, projects []domain.Project) Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.version == version {
		return c.summary
	}

	c.summary = Compute(projects)
	c.version = version
	c.valid = true
	return c.summary
}
