// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"sync"

	"career-assessment-workers/internal/common/config"
	"career-assessment-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// JobHandler is implemented by every assessment worker.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

// Manager opens job workers and closes them together on shutdown.
type Manager struct {
	client  zbc.Client
	logger  logger.Logger
	mu      sync.Mutex
	workers map[string]worker.JobWorker
}

func NewManager(client zbc.Client, log logger.Logger) *Manager {
	return &Manager{
		client:  client,
		logger:  log,
		workers: make(map[string]worker.JobWorker),
	}
}

// Start opens a worker for taskType. Disabled workers are skipped and
// reported as not started.
func (m *Manager) Start(taskType string, wcfg config.WorkerConfig, h JobHandler) bool {
	if !wcfg.Enabled {
		m.logger.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return false
	}

	jw := m.client.NewJobWorker().
		JobType(taskType).
		Handler(h.Handle).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Open()

	m.mu.Lock()
	m.workers[taskType] = jw
	m.mu.Unlock()

	m.logger.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})
	return true
}

// Running returns the number of open workers.
func (m *Manager) Running() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workers)
}

// Stop closes every worker and waits for in-flight jobs.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for taskType, jw := range m.workers {
		m.logger.Info("stopping worker", map[string]interface{}{"taskType": taskType})
		jw.Close()
		jw.AwaitClose()
		delete(m.workers, taskType)
	}
}

// CompleteJob sends the completion command with vars as the job output.
func CompleteJob(ctx context.Context, client worker.JobClient, job entities.Job, vars map[string]interface{}) error {
	cmd, err := client.NewCompleteJobCommand().JobKey(job.GetKey()).VariablesFromMap(vars)
	if err != nil {
		return err
	}
	_, err = cmd.Send(ctx)
	return err
}
