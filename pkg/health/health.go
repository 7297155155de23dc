// Package health runs named component checks and serves the liveness and
// readiness endpoints.
package health

import (
	"sync"
	"time"
)

// Status is the health of a component or of the whole service.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Check is one component's result.
type Check struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// CheckFunc performs a single component check.
type CheckFunc func() Check

// Response is the aggregate health report.
type Response struct {
	Status    Status           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Checks    map[string]Check `json:"checks,omitempty"`
}

// Checker aggregates named checks. The zero set is healthy.
type Checker struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
	start  time.Time
}

// NewChecker creates an empty checker.
func NewChecker() *Checker {
	return &Checker{
		checks: make(map[string]CheckFunc),
		start:  time.Now(),
	}
}

// Register adds or replaces a named check.
func (c *Checker) Register(name string, fn CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = fn
}

// Check runs every registered check. The worst status wins.
func (c *Checker) Check() Response {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp := Response{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(c.start).String(),
		Checks:    make(map[string]Check, len(c.checks)),
	}
	for name, fn := range c.checks {
		check := fn()
		check.Name = name
		resp.Checks[name] = check
		if check.Status == StatusUnhealthy {
			resp.Status = StatusUnhealthy
		}
	}
	return resp
}

// Live reports process liveness; it never runs component checks.
func (c *Checker) Live() Response {
	return Response{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(c.start).String(),
	}
}
