package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/taskboard/backend/repository/memory"
)

// Status is a point-in-time census of the in-memory store.
type Status struct {
	Collections memory.Census `json:"collections"`
	Uptime      time.Duration `json:"-"`
	LastCheck   time.Time     `json:"lastCheck"`
}

// Monitor samples the store's collection sizes on an interval so the health
// endpoint can answer without touching collection locks on every request.
type Monitor struct {
	store    *memory.Store
	interval time.Duration
	started  time.Time
	logger   *zap.Logger

	mu     sync.RWMutex
	status Status
	stopCh chan struct{}
}

func New(store *memory.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		interval: interval,
		started:  time.Now(),
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	status := m.status
	status.Uptime = time.Since(m.started)
	return status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	census := m.store.Census()
	m.logger.Debug("store census",
		zap.Int("tasks", census.Tasks),
		zap.Int("categories", census.Categories),
		zap.Int("users", census.Users),
	)

	m.mu.Lock()
	m.status = Status{
		Collections: census,
		LastCheck:   time.Now(),
	}
	m.mu.Unlock()
}
