package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-coach-api/infrastructure/repository"
	"github.com/vfg2006/revenue-coach-api/internal/config"
	"github.com/vfg2006/revenue-coach-api/pkg/metrics"
)

// ErrInvalidRetentionDays impede que uma retenção zerada ou negativa apague todo o histórico
var ErrInvalidRetentionDays = errors.New("archive retention days must be positive")

// RetentionCutoff retorna o instante antes do qual as simulações podem ser removidas
func RetentionCutoff(now time.Time, retentionDays int) (time.Time, error) {
	if retentionDays <= 0 {
		return time.Time{}, ErrInvalidRetentionDays
	}
	return now.AddDate(0, 0, -retentionDays), nil
}

// ReportRetentionConfig representa a configuração da limpeza do histórico de simulações
type ReportRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// ReportRetentionService remove periodicamente as simulações arquivadas mais antigas que a retenção
type ReportRetentionService struct {
	scheduler            *gocron.Scheduler
	config               ReportRetentionConfig
	reportRepo           repository.SimulationReportRepository
	now                  func() time.Time
	runMutex             sync.Mutex
	running              bool
	lastRunStartedAt     time.Time
	lastRunCompletedAt   time.Time
	lastRunRemovedReport int64
}

func NewReportRetentionService(
	reportRepo repository.SimulationReportRepository,
	appConfig *config.Config,
) *ReportRetentionService {
	retentionConfig := ReportRetentionConfig{
		CronSchedule:  appConfig.Retention.CronSchedule,
		RetentionDays: appConfig.Retention.RetentionDays,
		Enabled:       appConfig.Retention.Enabled && reportRepo != nil,
	}

	if retentionConfig.Enabled && retentionConfig.RetentionDays <= 0 {
		logrus.WithField("retention_days", retentionConfig.RetentionDays).
			Warn("Retenção inválida, limpeza do histórico desabilitada")
		retentionConfig.Enabled = false
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"enabled":        retentionConfig.Enabled,
	}).Info("Configuração da limpeza do histórico de simulações carregada")

	return &ReportRetentionService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     retentionConfig,
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *ReportRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza do histórico de simulações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza do histórico de simulações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.pruneReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do histórico de simulações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza do histórico de simulações")
		s.scheduler.Stop()
	}()

	return nil
}

// pruneReports remove as simulações fora da janela de retenção
func (s *ReportRetentionService) pruneReports() {
	cutoff, err := RetentionCutoff(s.now(), s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Limpeza do histórico ignorada")
		return
	}

	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Limpeza do histórico já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunStartedAt = s.now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	logrus.WithField("cutoff", cutoff.Format(time.DateOnly)).Info("Iniciando limpeza do histórico de simulações")

	removed, err := s.reportRepo.DeleteOlderThan(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover simulações antigas")
		return
	}

	metrics.ReportsPruned.Add(float64(removed))

	s.runMutex.Lock()
	s.lastRunCompletedAt = s.now()
	s.lastRunRemovedReport = removed
	s.runMutex.Unlock()

	logrus.WithField("removed", removed).Info("Limpeza do histórico de simulações concluída")
}

// TriggerManualRun inicia manualmente uma limpeza do histórico
func (s *ReportRetentionService) TriggerManualRun() bool {
	if s.reportRepo == nil || s.config.RetentionDays <= 0 {
		return false
	}

	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Limpeza do histórico já em andamento, ignorando solicitação manual")
		return false
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando limpeza manual do histórico de simulações")
	go s.pruneReports()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportRetentionService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"retention_enabled":       s.config.Enabled,
		"retention_cron":          s.config.CronSchedule,
		"retention_days":          s.config.RetentionDays,
		"running":                 s.running,
		"last_run_started_at":     s.lastRunStartedAt,
		"last_run_completed_at":   s.lastRunCompletedAt,
		"last_run_removed_report": s.lastRunRemovedReport,
	}
}
