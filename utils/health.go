package utils

import (
	"context"
	"sort"
	"sync"
	"time"
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthStatus is the result of running every registered check.
type HealthStatus struct {
	Status     string          `json:"status"` // "ok" or "degraded"
	Components map[string]bool `json:"components,omitempty"`
	CheckedAt  time.Time       `json:"checkedAt"`
}

// HealthChecker runs named dependency checks on demand.
type HealthChecker struct {
	mu      sync.RWMutex
	checks  map[string]HealthCheck
	timeout time.Duration
}

func NewHealthChecker(timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthChecker{checks: make(map[string]HealthCheck), timeout: timeout}
}

// Register adds or replaces a named check.
func (h *HealthChecker) Register(name string, check HealthCheck) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// Names lists registered checks in sorted order.
func (h *HealthChecker) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check runs every check concurrently under a shared timeout.
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	h.mu.RLock()
	checks := make(map[string]HealthCheck, len(h.checks))
	for name, check := range h.checks {
		checks[name] = check
	}
	h.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	var (
		wg      sync.WaitGroup
		resMu   sync.Mutex
		results = make(map[string]bool, len(checks))
	)
	for name, check := range checks {
		wg.Add(1)
		go func(name string, check HealthCheck) {
			defer wg.Done()
			ok := check(ctx) == nil
			resMu.Lock()
			results[name] = ok
			resMu.Unlock()
		}(name, check)
	}
	wg.Wait()

	status := "ok"
	for _, ok := range results {
		if !ok {
			status = "degraded"
		}
	}
	return HealthStatus{Status: status, Components: results, CheckedAt: time.Now()}
}
