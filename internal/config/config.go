package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Source             Source             `mapstructure:",squash"`
	Commission         Commission         `mapstructure:",squash"`
	Competition        Competition        `mapstructure:",squash"`
	CompetitionRanking CompetitionRanking `mapstructure:",squash"`
	Task               Task               `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	ConnectTimeout  time.Duration `mapstructure:"database_connect_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Source struct {
	PageSize       int           `mapstructure:"source_page_size"`
	CacheTTL       time.Duration `mapstructure:"source_cache_ttl"`
	RefreshCron    string        `mapstructure:"source_refresh_cron"`
	RefreshEnabled bool          `mapstructure:"source_refresh_enabled"`
}

type Commission struct {
	SDRRate float64 `mapstructure:"commission_sdr_rate"`
}

type Competition struct {
	SeatThreshold float64  `mapstructure:"competition_seat_threshold"`
	Categories    []string `mapstructure:"competition_categories"`
}

type CompetitionRanking struct {
	CronSchedule string `mapstructure:"competition_ranking_cron"`
	SyncEnabled  bool   `mapstructure:"competition_ranking_sync_enabled"`
}

type Task struct {
	CompletedStatuses []string `mapstructure:"task_completed_statuses"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/matriz?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10) // As leituras em lote são sequenciais por fonte
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT", "10s")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("SOURCE_PAGE_SIZE", 1000)  // Registros por página nas leituras em lote
	viper.SetDefault("SOURCE_CACHE_TTL", "15m") // Validade dos dados em memória
	viper.SetDefault("SOURCE_REFRESH_CRON", "*/15 * * * *")
	viper.SetDefault("SOURCE_REFRESH_ENABLED", false)

	viper.SetDefault("COMMISSION_SDR_RATE", 0.05)

	viper.SetDefault("COMPETITION_SEAT_THRESHOLD", 105)
	viper.SetDefault("COMPETITION_CATEGORIES", "open space,sala,estação de trabalho")

	viper.SetDefault("COMPETITION_RANKING_CRON", "0 6 * * *")   // Todos os dias às 6h da manhã
	viper.SetDefault("COMPETITION_RANKING_SYNC_ENABLED", false) // Habilitar snapshot diário do ranking

	viper.SetDefault("TASK_COMPLETED_STATUSES", "concluida,concluída,concluido,concluído,finalizada,done")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo") // Fuso dos dias e meses dos relatórios
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Source.PageSize <= 0 {
		config.Source.PageSize = 1000
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
