package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
	"github.com/H-Ngomijana/ERM/internal/domain/port"
	"github.com/H-Ngomijana/ERM/internal/infra/config"
	"github.com/H-Ngomijana/ERM/internal/infra/erm"
	"github.com/H-Ngomijana/ERM/internal/infra/evidence"
	"github.com/H-Ngomijana/ERM/internal/infra/ffmpeg"
	"github.com/H-Ngomijana/ERM/internal/infra/metrics"
	miniostore "github.com/H-Ngomijana/ERM/internal/infra/minio"
	"github.com/H-Ngomijana/ERM/internal/infra/openalpr"
	"github.com/H-Ngomijana/ERM/internal/infra/rabbitmq"
	"github.com/H-Ngomijana/ERM/internal/infra/tracing"
	"github.com/H-Ngomijana/ERM/internal/usecase"
	"github.com/H-Ngomijana/ERM/pkg/logger"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	fatalOnErr(err, "load config")

	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	log, err := logger.New(cfg.LogLevel)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	log.Info("starting anpr edge service",
		zap.String("camera_id", cfg.CameraID),
		zap.String("api_url", cfg.ERMAPIURL),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tracing (non-fatal if the collector is unavailable)
	if cfg.OTLPEndpoint != "" {
		tp, err := tracing.Init(ctx, cfg.OTLPEndpoint)
		if err != nil {
			log.Warn("tracing init failed, continuing without tracing", zap.Error(err))
		} else {
			defer tp.Shutdown(ctx)
		}
	}

	// Recognizer: pick the capable engine if the alpr binary is installed,
	// the disabled stub otherwise. Decided once, never revisited.
	var recognizer port.Recognizer
	capable, err := openalpr.New(openalpr.Options{
		Country:    cfg.ALPRCountry,
		ConfigFile: cfg.ALPRConfigFile,
		RuntimeDir: cfg.ALPRRuntimeDir,
	}, log)
	if err != nil {
		log.Warn("OpenALPR not installed, recognition disabled", zap.Error(err))
		recognizer = openalpr.NewDisabled()
	} else {
		recognizer = capable
	}

	// Evidence store: object storage when configured, local disk otherwise
	var evidenceStore port.EvidenceStore = evidence.NewLocalStore(cfg.SnapshotDir)
	if cfg.MinIOEndpoint != "" {
		store, err := miniostore.NewStore(miniostore.StoreConfig{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			UseSSL:    cfg.MinIOUseSSL,
			Bucket:    cfg.MinIOBucket,
		})
		fatalOnErr(err, "create snapshot store")
		fatalOnErr(store.EnsureBucket(ctx), "ensure snapshot bucket")
		evidenceStore = store
	}

	// Detection mirror (optional)
	var publisher port.DetectionPublisher
	if cfg.RabbitMQURL != "" {
		conn, err := amqp.Dial(cfg.RabbitMQURL)
		fatalOnErr(err, "connect to rabbitmq")
		defer conn.Close()

		pub, err := rabbitmq.NewDetectionPublisher(conn, cfg.RabbitMQExchange)
		fatalOnErr(err, "create detection publisher")
		defer pub.Close()
		publisher = pub
	}

	submitter := erm.NewClient(cfg.ERMAPIURL, cfg.ERMAPIKey, cfg.SubmitTimeout, log)
	source := ffmpeg.NewSource(cfg.StreamURL, log)

	loop := usecase.NewCaptureLoop(
		source, recognizer,
		entity.NewDeduplicator(cfg.DedupeCooldown),
		evidenceStore, submitter, publisher,
		log,
		usecase.CaptureLoopConfig{
			CameraID:            cfg.CameraID,
			FrameInterval:       cfg.FrameInterval,
			ConfidenceThreshold: cfg.ConfidenceThreshold,
		},
	)

	metricsSrv := metrics.Serve(cfg.MetricsPort, log)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("capture loop error", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	metricsSrv.Shutdown(shutdownCtx)

	log.Info("anpr edge service stopped")
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		panic(msg + ": " + err.Error())
	}
}
