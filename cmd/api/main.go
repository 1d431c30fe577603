package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-coach-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-coach-api/infrastructure/repository"
	"github.com/vfg2006/revenue-coach-api/internal/api"
	"github.com/vfg2006/revenue-coach-api/internal/config"
	"github.com/vfg2006/revenue-coach-api/internal/scheduler"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/calculating"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/sharing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	simulator := calculating.NewService()

	// O histórico é opcional: sem ele o processo não guarda estado entre requisições
	var reportRepo repository.SimulationReportRepository
	if cfg.Archive.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if err := pgConn.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar o schema do histórico de simulações")
		}

		reportRepo = repository.NewSimulationReportRepository(pgConn)
		simulator = simulator.(*calculating.Service).WithArchive(reportRepo)
		logrus.Info("Histórico de simulações habilitado")
	}

	sharer := sharing.NewService(cfg)

	reportRetentionService := scheduler.NewReportRetentionService(reportRepo, cfg)
	if err := reportRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do histórico")
	}

	server, err := api.New(
		cfg,
		simulator,
		sharer,
		reportRetentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
