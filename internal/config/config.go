package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Steam           Steam           `mapstructure:",squash"`
	Google          Google          `mapstructure:",squash"`
	FinancialCache  FinancialCache  `mapstructure:",squash"`
	PublishedSheets PublishedSheets `mapstructure:",squash"`
	UTMLinks        UTMLinks        `mapstructure:",squash"`
	Exchange        Exchange        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	CORS            CORS            `mapstructure:",squash"`
	FinancialsSync  FinancialsSync  `mapstructure:",squash"`
	SheetsWarmup    SheetsWarmup    `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Steam struct {
	FinancialAPIKey string        `mapstructure:"steam_financial_api_key"`
	PartnerURL      string        `mapstructure:"steam_partner_url"`
	APIURL          string        `mapstructure:"steam_api_url"`
	StoreURL        string        `mapstructure:"steam_store_url"`
	AppID           string        `mapstructure:"steam_app_id"`
	RequestTimeout  time.Duration `mapstructure:"steam_request_timeout"`
	MaxSalesPages   int           `mapstructure:"steam_max_sales_pages"`
}

type Google struct {
	ServiceAccountEmail string `mapstructure:"google_service_account_email"`
	PrivateKey          string `mapstructure:"google_private_key"`
	TokenURL            string `mapstructure:"google_token_url"`
	SheetsURL           string `mapstructure:"google_sheets_url"`
	Scope               string `mapstructure:"google_scope"`
}

// HasCredentials indica se a conta de serviço do Google está configurada
func (g Google) HasCredentials() bool {
	return g.ServiceAccountEmail != "" && g.PrivateKey != ""
}

const (
	CacheBackendSheets   = "sheets"
	CacheBackendPostgres = "postgres"
	CacheBackendSQLite   = "sqlite"
	CacheBackendNone     = "none"
)

type FinancialCache struct {
	Backend        string `mapstructure:"financial_cache_backend"`
	SheetID        string `mapstructure:"financial_cache_sheet_id"`
	SheetName      string `mapstructure:"financial_cache_sheet_name"`
	FetchBatchSize int    `mapstructure:"financial_fetch_batch_size"`
	SQLitePath     string `mapstructure:"financial_cache_sqlite_path"`
}

type PublishedSheets struct {
	QuickLinksCSVURL      string        `mapstructure:"quick_links_csv_url"`
	QuickLinksEditURL     string        `mapstructure:"quick_links_edit_url"`
	AdminUsersCSVURL      string        `mapstructure:"admin_users_csv_url"`
	AdminUsersEditURL     string        `mapstructure:"admin_users_edit_url"`
	AllowedEmailsCSVURL   string        `mapstructure:"allowed_emails_csv_url"`
	SupportedGamesCSVURL  string        `mapstructure:"supported_games_csv_url"`
	SupportedGamesEditURL string        `mapstructure:"supported_games_edit_url"`
	CacheTTL              time.Duration `mapstructure:"published_sheets_cache_ttl"`

	LocalizationBackendCSVURL   string `mapstructure:"localization_backend_csv_url"`
	LocalizationBackendEditURL  string `mapstructure:"localization_backend_edit_url"`
	LocalizationFrontendCSVURL  string `mapstructure:"localization_frontend_csv_url"`
	LocalizationFrontendEditURL string `mapstructure:"localization_frontend_edit_url"`
	LocalizationGamesCSVURL     string `mapstructure:"localization_games_csv_url"`
	LocalizationGamesEditURL    string `mapstructure:"localization_games_edit_url"`
}

type UTMLinks struct {
	SheetID string `mapstructure:"utm_links_sheet_id"`
	Range   string `mapstructure:"utm_links_range"`
}

type Exchange struct {
	URL string `mapstructure:"exchange_url"`
}

type Auth struct {
	Secret   string `mapstructure:"auth_secret"`
	Disabled bool   `mapstructure:"auth_disabled"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type FinancialsSync struct {
	CronSchedule string `mapstructure:"financials_sync_cron"`
	LookbackDays int    `mapstructure:"financials_sync_lookback_days"`
	Enabled      bool   `mapstructure:"financials_sync_enabled"`
}

type SheetsWarmup struct {
	CronSchedule string `mapstructure:"sheets_warmup_cron"`
	Enabled      bool   `mapstructure:"sheets_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/publisher")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STEAM_FINANCIAL_API_KEY", "")
	viper.SetDefault("STEAM_PARTNER_URL", "https://partner.steam-api.com")
	viper.SetDefault("STEAM_API_URL", "https://api.steampowered.com")
	viper.SetDefault("STEAM_STORE_URL", "https://store.steampowered.com")
	viper.SetDefault("STEAM_APP_ID", "")
	viper.SetDefault("STEAM_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("STEAM_MAX_SALES_PAGES", 20)

	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_SHEETS_URL", "https://sheets.googleapis.com/v4/spreadsheets")
	viper.SetDefault("GOOGLE_SCOPE", "https://www.googleapis.com/auth/spreadsheets")

	viper.SetDefault("FINANCIAL_CACHE_BACKEND", CacheBackendSheets)
	viper.SetDefault("FINANCIAL_CACHE_SHEET_ID", "")
	viper.SetDefault("FINANCIAL_CACHE_SHEET_NAME", "financials")
	viper.SetDefault("FINANCIAL_FETCH_BATCH_SIZE", 5) // chamadas simultâneas por onda
	viper.SetDefault("FINANCIAL_CACHE_SQLITE_PATH", "financials_cache.db")

	// Planilhas publicadas como CSV (Arquivo > Publicar na Web)
	viper.SetDefault("QUICK_LINKS_CSV_URL", "")
	viper.SetDefault("QUICK_LINKS_EDIT_URL", "")
	viper.SetDefault("ADMIN_USERS_CSV_URL", "")
	viper.SetDefault("ADMIN_USERS_EDIT_URL", "")
	viper.SetDefault("ALLOWED_EMAILS_CSV_URL", "") // vazio usa a mesma planilha de admins
	viper.SetDefault("SUPPORTED_GAMES_CSV_URL", "")
	viper.SetDefault("SUPPORTED_GAMES_EDIT_URL", "")
	viper.SetDefault("LOCALIZATION_BACKEND_CSV_URL", "")
	viper.SetDefault("LOCALIZATION_BACKEND_EDIT_URL", "")
	viper.SetDefault("LOCALIZATION_FRONTEND_CSV_URL", "")
	viper.SetDefault("LOCALIZATION_FRONTEND_EDIT_URL", "")
	viper.SetDefault("LOCALIZATION_GAMES_CSV_URL", "")
	viper.SetDefault("LOCALIZATION_GAMES_EDIT_URL", "")
	viper.SetDefault("PUBLISHED_SHEETS_CACHE_TTL", "30m")

	viper.SetDefault("UTM_LINKS_SHEET_ID", "")
	viper.SetDefault("UTM_LINKS_RANGE", "Sheet1!A:Z")

	viper.SetDefault("EXCHANGE_URL", "https://api.frankfurter.app")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_DISABLED", false) // ONLY LOCAL

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("FINANCIALS_SYNC_CRON", "0 10 * * *") // Todos os dias às 10h, depois do fechamento da Steam
	viper.SetDefault("FINANCIALS_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("FINANCIALS_SYNC_ENABLED", false)

	viper.SetDefault("SHEETS_WARMUP_CRON", "*/30 * * * *")
	viper.SetDefault("SHEETS_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "")
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

	config.normalize()

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) normalize() {
	// A chave privada costuma chegar com "\n" literais quando vem de variável de ambiente
	c.Google.PrivateKey = strings.ReplaceAll(c.Google.PrivateKey, `\n`, "\n")

	if c.PublishedSheets.AllowedEmailsCSVURL == "" {
		c.PublishedSheets.AllowedEmailsCSVURL = c.PublishedSheets.AdminUsersCSVURL
	}

	if c.FinancialCache.FetchBatchSize <= 0 {
		c.FinancialCache.FetchBatchSize = 5
	}

	c.FinancialCache.Backend = strings.ToLower(strings.TrimSpace(c.FinancialCache.Backend))
	if c.FinancialCache.Backend == "" {
		c.FinancialCache.Backend = CacheBackendSheets
	}

	if c.App.Env != "" {
		// pkg/log decide o formato dos campos a partir de APP_ENV
		os.Setenv("APP_ENV", c.App.Env)
	}
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
