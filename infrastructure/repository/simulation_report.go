// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/revenue-coach-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-coach-api/internal/domain"
)

const (
	simulationReportsTable = "simulation_reports"
	defaultReportsLimit    = 50
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var simulationReportColumns = []string{
	"id",
	"current_input",
	"target_input",
	"current_result",
	"target_result",
	"delta",
	"percent_improvement",
	"created_at",
}

type SimulationReportRepository interface {
	Save(simulation *domain.Simulation) error
	GetByID(id string) (*domain.Simulation, error)
	List(filters *domain.SimulationReportFilters) ([]*domain.Simulation, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type simulationReportRepository struct {
	conn postgres.Queryer
}

func NewSimulationReportRepository(conn postgres.Queryer) SimulationReportRepository {
	return &simulationReportRepository{
		conn: conn,
	}
}

func (r *simulationReportRepository) Save(simulation *domain.Simulation) error {
	if simulation == nil || simulation.ID == "" {
		return fmt.Errorf("simulação sem ID não pode ser arquivada")
	}

	currentInput, err := json.Marshal(simulation.Current)
	if err != nil {
		return fmt.Errorf("erro ao serializar cenário atual: %w", err)
	}
	targetInput, err := json.Marshal(simulation.Target)
	if err != nil {
		return fmt.Errorf("erro ao serializar cenário meta: %w", err)
	}
	currentResult, err := json.Marshal(simulation.CurrentResult)
	if err != nil {
		return fmt.Errorf("erro ao serializar resultado atual: %w", err)
	}
	targetResult, err := json.Marshal(simulation.TargetResult)
	if err != nil {
		return fmt.Errorf("erro ao serializar resultado meta: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(simulationReportsTable).
		Columns(simulationReportColumns...).
		Values(
			simulation.ID,
			currentInput,
			targetInput,
			currentResult,
			targetResult,
			simulation.Comparison.Delta,
			simulation.Comparison.PercentImprovement,
			simulation.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *simulationReportRepository) GetByID(id string) (*domain.Simulation, error) {
	query, args, err := squirrel.
		Select(simulationReportColumns...).
		From(simulationReportsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	simulation, err := scanSimulation(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear simulação: %w", err)
	}

	return simulation, nil
}

func (r *simulationReportRepository) List(filters *domain.SimulationReportFilters) ([]*domain.Simulation, error) {
	limit := uint64(defaultReportsLimit)

	queryBuilder := squirrel.
		Select(simulationReportColumns...).
		From(simulationReportsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.Since != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"created_at": *filters.Since})
		}
		if filters.Until != nil {
			queryBuilder = queryBuilder.Where(squirrel.Lt{"created_at": *filters.Until})
		}
		if filters.Limit > 0 {
			limit = filters.Limit
		}
	}

	query, args, err := queryBuilder.Limit(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	simulations := make([]*domain.Simulation, 0)
	for rows.Next() {
		simulation, err := scanSimulation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear simulação: %w", err)
		}
		simulations = append(simulations, simulation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return simulations, nil
}

// DeleteOlderThan remove as simulações criadas antes de cutoff e retorna quantas foram removidas
func (r *simulationReportRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(simulationReportsTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar query de remoção: %w", err)
	}

	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSimulation(row scanner) (*domain.Simulation, error) {
	simulation := &domain.Simulation{}
	var currentInput, targetInput, currentResult, targetResult []byte

	err := row.Scan(
		&simulation.ID,
		&currentInput,
		&targetInput,
		&currentResult,
		&targetResult,
		&simulation.Comparison.Delta,
		&simulation.Comparison.PercentImprovement,
		&simulation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(currentInput, &simulation.Current); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(targetInput, &simulation.Target); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(currentResult, &simulation.CurrentResult); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(targetResult, &simulation.TargetResult); err != nil {
		return nil, err
	}

	return simulation, nil
}
