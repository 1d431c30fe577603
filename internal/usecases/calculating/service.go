package calculating

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/revenue-coach-api/infrastructure/repository"
	"github.com/vfg2006/revenue-coach-api/internal/domain"
	"github.com/vfg2006/revenue-coach-api/pkg/log"
	"github.com/vfg2006/revenue-coach-api/pkg/metrics"
	"github.com/vfg2006/revenue-coach-api/pkg/utils"
)

var (
	ErrArchiveDisabled = errors.New("simulation archive is disabled")
	ErrReportNotFound  = errors.New("simulation report not found")
)

// Simulator calcula a comparação entre o cenário atual e a meta
type Simulator interface {
	// Simulate calcula os dois cenários e a comparação entre eles
	Simulate(ctx context.Context, current, target domain.ScenarioInput) (*domain.Simulation, error)

	// GetReport busca uma simulação arquivada
	GetReport(id string) (*domain.Simulation, error)

	// ListReports lista as simulações arquivadas
	ListReports(filters *domain.SimulationReportFilters) ([]*domain.Simulation, error)
}

type Service struct {
	archive repository.SimulationReportRepository
	now     func() time.Time
}

func NewService() Simulator {
	return &Service{
		now: time.Now,
	}
}

// WithArchive habilita o arquivamento das simulações calculadas
func (s *Service) WithArchive(archive repository.SimulationReportRepository) Simulator {
	s.archive = archive
	return s
}

func (s *Service) Simulate(ctx context.Context, current, target domain.ScenarioInput) (*domain.Simulation, error) {
	if !current.FranchiseType.IsValid() || !target.FranchiseType.IsValid() {
		return nil, domain.ErrUnknownFranchiseType
	}

	current = current.Normalized()
	target = target.Normalized()

	currentResult := ComputeScenario(current)
	targetResult := ComputeScenario(target)

	simulation := &domain.Simulation{
		Current:       current,
		Target:        target,
		CurrentResult: currentResult,
		TargetResult:  targetResult,
		Comparison:    Compare(currentResult, targetResult),
		CreatedAt:     s.now().UTC(),
	}

	metrics.ScenariosByFranchiseType.WithLabelValues(current.FranchiseType.String(), "current").Inc()
	metrics.ScenariosByFranchiseType.WithLabelValues(target.FranchiseType.String(), "target").Inc()

	if s.archive != nil {
		s.archiveSimulation(ctx, simulation)
	}

	return simulation, nil
}

// archiveSimulation grava a simulação no histórico. Falhas não interrompem o cálculo.
func (s *Service) archiveSimulation(ctx context.Context, simulation *domain.Simulation) {
	logger := log.ForContext(ctx)

	id, err := utils.GenerateID()
	if err != nil {
		metrics.ArchiveFailures.Inc()
		logger.WithError(err).Error("calculator: failed to generate simulation ID")
		return
	}
	simulation.ID = id

	if err := s.archive.Save(simulation); err != nil {
		metrics.ArchiveFailures.Inc()
		simulation.ID = ""
		logger.WithError(err).Error("calculator: failed to archive simulation")
		return
	}

	logger.WithField("simulation_id", id).Debug("calculator: simulation archived")
}

func (s *Service) GetReport(id string) (*domain.Simulation, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}

	simulation, err := s.archive.GetByID(id)
	if err != nil {
		return nil, err
	}
	if simulation == nil {
		return nil, ErrReportNotFound
	}

	return simulation, nil
}

func (s *Service) ListReports(filters *domain.SimulationReportFilters) ([]*domain.Simulation, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}

	return s.archive.List(filters)
}
