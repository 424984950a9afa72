// cmd/worker-manager/workers.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/common/aws"
	"career-assessment-workers/internal/common/camunda"
	"career-assessment-workers/internal/common/config"
	"career-assessment-workers/internal/common/logger"
	aggregateresults "career-assessment-workers/internal/workers/assessment/aggregate-results"
	getprogress "career-assessment-workers/internal/workers/assessment/get-progress"
	indexresults "career-assessment-workers/internal/workers/assessment/index-results"
	notifyresults "career-assessment-workers/internal/workers/assessment/notify-results"
	scoretest "career-assessment-workers/internal/workers/assessment/score-test"
	submitcomplete "career-assessment-workers/internal/workers/assessment/submit-complete"
	"career-assessment-workers/pkg/registry"
)

type deps struct {
	cfg     *config.Config
	log     logger.Logger
	service *assessment.Service
	indexer indexresults.Indexer
}

func registerWorkers(ctx context.Context, m *camunda.Manager, d deps) error {
	// --- Scoring ---
	if taskType := scoretest.TaskType; config.IsWorkerEnabled(d.cfg, taskType) {
		handler, err := scoretest.NewHandler(scoretest.HandlerOptions{AppConfig: d.cfg, Service: d.service, Logger: d.log})
		if err != nil {
			return fmt.Errorf("failed to create %s handler: %w", taskType, err)
		}
		m.Start(taskType, config.GetWorkerConfig(d.cfg, taskType), handler)
	}

	if taskType := submitcomplete.TaskType; config.IsWorkerEnabled(d.cfg, taskType) {
		handler, err := submitcomplete.NewHandler(submitcomplete.HandlerOptions{AppConfig: d.cfg, Service: d.service, Logger: d.log})
		if err != nil {
			return fmt.Errorf("failed to create %s handler: %w", taskType, err)
		}
		m.Start(taskType, config.GetWorkerConfig(d.cfg, taskType), handler)
	}

	// --- Progress and aggregation ---
	if taskType := getprogress.TaskType; config.IsWorkerEnabled(d.cfg, taskType) {
		handler, err := getprogress.NewHandler(getprogress.HandlerOptions{AppConfig: d.cfg, Service: d.service, Logger: d.log})
		if err != nil {
			return fmt.Errorf("failed to create %s handler: %w", taskType, err)
		}
		m.Start(taskType, config.GetWorkerConfig(d.cfg, taskType), handler)
	}

	if taskType := aggregateresults.TaskType; config.IsWorkerEnabled(d.cfg, taskType) {
		handler, err := aggregateresults.NewHandler(aggregateresults.HandlerOptions{AppConfig: d.cfg, Service: d.service, Logger: d.log})
		if err != nil {
			return fmt.Errorf("failed to create %s handler: %w", taskType, err)
		}
		m.Start(taskType, config.GetWorkerConfig(d.cfg, taskType), handler)
	}

	// --- Delivery ---
	if taskType := notifyresults.TaskType; config.IsWorkerEnabled(d.cfg, taskType) {
		opts := notifyresults.HandlerOptions{AppConfig: d.cfg, Service: d.service, Logger: d.log}
		n := d.cfg.Notifications
		if n.Email.Enabled || n.Events.Enabled {
			awsCfg, err := aws.LoadConfig(ctx, n.AWS.Region)
			if err != nil {
				return err
			}
			if n.Email.Enabled {
				opts.Mailer = aws.NewSESClient(awsCfg)
			}
			if n.Events.Enabled {
				opts.Publisher = aws.NewSNSClient(awsCfg)
			}
		}
		handler, err := notifyresults.NewHandler(opts)
		if err != nil {
			return fmt.Errorf("failed to create %s handler: %w", taskType, err)
		}
		m.Start(taskType, config.GetWorkerConfig(d.cfg, taskType), handler)
	}

	if taskType := indexresults.TaskType; config.IsWorkerEnabled(d.cfg, taskType) {
		handler, err := indexresults.NewHandler(indexresults.HandlerOptions{AppConfig: d.cfg, Service: d.service, Indexer: d.indexer, Logger: d.log})
		if err != nil {
			return fmt.Errorf("failed to create %s handler: %w", taskType, err)
		}
		m.Start(taskType, config.GetWorkerConfig(d.cfg, taskType), handler)
	}

	return nil
}

// checkRegistry warns about enabled workers that have no registry entry.
// A missing registry file falls back to the built-in registry.
func checkRegistry(cfg *config.Config, log logger.Logger) error {
	reg, err := registry.LoadRegistry(cfg.Registry.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("registry file not found, using built-in registry", map[string]interface{}{"path": cfg.Registry.Path})
		reg = registry.Default()
	} else if err != nil {
		return err
	}
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("activity registry %s: %w", cfg.Registry.Path, err)
	}

	for taskType, wcfg := range cfg.Workers {
		if !wcfg.Enabled {
			continue
		}
		if _, ok := reg.Find(taskType); !ok {
			log.Warn("enabled worker has no registry entry", map[string]interface{}{"taskType": taskType})
		}
	}
	return nil
}
