package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ERMAPIURL string `env:"ERM_API_URL" envDefault:"http://localhost:4000"`
	ERMAPIKey string `env:"ERM_API_KEY" envDefault:"your-api-key"`

	CameraID  string `env:"CAMERA_ID"  envDefault:"CAM1"`
	StreamURL string `env:"RTSP_URL"   envDefault:"rtsp://camera-ip:554/stream"`

	ConfidenceThreshold float64       `env:"CONFIDENCE_THRESHOLD" envDefault:"85"`
	FrameInterval       int           `env:"FRAME_INTERVAL"       envDefault:"10"`
	DedupeCooldown      time.Duration `env:"DEDUPE_COOLDOWN"      envDefault:"5s"`
	SubmitTimeout       time.Duration `env:"SUBMIT_TIMEOUT"       envDefault:"10s"`

	SnapshotDir string `env:"SNAPSHOT_DIR" envDefault:"snapshots"`

	ALPRCountry    string `env:"ALPR_COUNTRY"     envDefault:"us"`
	ALPRConfigFile string `env:"ALPR_CONFIG"      envDefault:"openalpr.conf"`
	ALPRRuntimeDir string `env:"ALPR_RUNTIME_DIR" envDefault:"/etc/openalpr/runtime_data"`

	// Optional: when MinIOEndpoint is set, snapshots are uploaded and the
	// submission carries the object URL instead of a local path.
	MinIOEndpoint  string `env:"MINIO_ENDPOINT"`
	MinIOAccessKey string `env:"MINIO_ACCESS_KEY" envDefault:"minioadmin"`
	MinIOSecretKey string `env:"MINIO_SECRET_KEY" envDefault:"minioadmin"`
	MinIOUseSSL    bool   `env:"MINIO_USE_SSL"    envDefault:"false"`
	MinIOBucket    string `env:"MINIO_BUCKET"     envDefault:"anpr-snapshots"`

	// Optional: when RabbitMQURL is set, accepted detections are mirrored to
	// the site broker.
	RabbitMQURL      string `env:"RABBITMQ_URL"`
	RabbitMQExchange string `env:"RABBITMQ_EXCHANGE" envDefault:"kinamba.anpr"`

	// DatabaseURL has no default: the migration runner refuses to start
	// without it.
	DatabaseURL string `env:"DATABASE_URL"`

	MetricsPort  int    `env:"METRICS_PORT"  envDefault:"9402"`
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	LogLevel     string `env:"LOG_LEVEL"     envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BindFlags registers the CLI overrides on fs. Flag values take precedence
// over environment defaults once fs is parsed, so env-loaded values serve as
// the flag defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.StreamURL, "camera-url", c.StreamURL, "RTSP camera URL")
	fs.StringVar(&c.CameraID, "camera-id", c.CameraID, "camera identifier")
	fs.StringVar(&c.ERMAPIURL, "api-url", c.ERMAPIURL, "ERM API base URL")
	fs.StringVar(&c.ERMAPIKey, "api-key", c.ERMAPIKey, "ERM API key")
	fs.Float64Var(&c.ConfidenceThreshold, "threshold", c.ConfidenceThreshold, "minimum plate confidence (0-100)")
}
