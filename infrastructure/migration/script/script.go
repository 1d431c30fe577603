package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-coach-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-coach-api/infrastructure/repository"
	"github.com/vfg2006/revenue-coach-api/internal/config"
	"github.com/vfg2006/revenue-coach-api/internal/scheduler"
)

const (
	commandSchema = "schema"
	commandPrune  = "prune"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de manutenção do histórico...")
}

// prune remove as simulações fora da janela de retenção configurada
func prune(conn *postgres.Connection, retentionDays int) {
	startTime := time.Now()
	cutoff, err := scheduler.RetentionCutoff(startTime, retentionDays)
	if err != nil {
		logrus.WithError(err).WithField("retention_days", retentionDays).Fatal("ERRO na configuração de retenção")
	}

	removed, err := repository.NewSimulationReportRepository(conn).DeleteOlderThan(cutoff)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao remover simulações antigas")
	}

	logrus.WithFields(logrus.Fields{
		"cutoff":  cutoff.Format(time.DateOnly),
		"removed": removed,
		"elapsed": time.Since(startTime).String(),
	}).Info("Limpeza do histórico concluída")
}

// Uso: script [schema|prune]. Sem argumento apenas cria o schema.
func main() {
	setupLogger()

	command := commandSchema
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar o schema do histórico")
	}
	logrus.Info("Schema do histórico verificado")

	switch command {
	case commandSchema:
	case commandPrune:
		prune(conn, cfg.Retention.RetentionDays)
	default:
		logrus.Fatalf("Comando desconhecido: %s (use %s ou %s)", command, commandSchema, commandPrune)
	}
}
