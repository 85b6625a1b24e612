package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"fitweek/internal/config"
	"fitweek/internal/model"
	"fitweek/internal/pkg/logger"
	mysqlClient "fitweek/internal/platform/mysql"
	rabbitmqClient "fitweek/internal/platform/rabbitmq"
	redisClient "fitweek/internal/platform/redis"
	"fitweek/internal/repository"
	"fitweek/internal/worker"
)

type App struct {
	Config       *config.Config
	Log          *logger.Logger
	MySQL        *gorm.DB
	Redis        *redis.Client
	MQConn       *amqp.Connection
	IntakeWorker *worker.IntakePersistWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	log := logger.New()
	if cfg.App.Env == "dev" {
		log = logger.NewDevelopment()
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(&model.User{}, &model.ProteinLog{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	logRepo := repository.NewProteinLogRepository(mysqlDB)
	intakeWorker := worker.NewIntakePersistWorker(mqConn, logRepo, cfg.RabbitMQ.IntakePersistQueue, log)
	if err := intakeWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start intake worker failed: %w", err)
	}

	return &App{
		Config:       cfg,
		Log:          log,
		MySQL:        mysqlDB,
		Redis:        redisCli,
		MQConn:       mqConn,
		IntakeWorker: intakeWorker,
		StartedAt:    time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.IntakeWorker != nil {
		a.IntakeWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	if a.Log != nil {
		_ = a.Log.Sync()
	}
	return closeErr
}
