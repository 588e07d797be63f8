package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Required variables are enforced by must(); the
// GitHub and SMTP blocks are optional because the asset bridge and the mail
// notifier can run disabled in development.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	DBUser     string // database username
	DBPass     string // database password (optional)
	DBHost     string // database host address
	DBPort     string // database port number
	DBName     string // database name
	JWTSecret  string // secret used to sign JWTs
	BcryptCost int    // bcrypt cost for password hashing

	AdminEmail string // seeded main admin email
	AdminPass  string // seeded main admin password (first run only)

	GitHubToken    string // personal access token for the asset repository
	GitHubOwner    string // owner of the asset repository
	GitHubRepo     string // name of the asset repository
	GitHubAssetDir string // directory inside the repository holding images

	SMTPHost    string // SMTP server host
	SMTPPort    string // SMTP server port
	SMTPUser    string // SMTP username
	SMTPPass    string // SMTP password
	SMTPFrom    string // From address on outgoing notifications
	MailEnabled bool   // when false, notifications are logged instead of sent
}

// Load reads configuration values from environment variables and returns a
// Config. Missing required variables cause the program to exit with a fatal
// log message.
func Load() Config {
	return Config{
		Env:        must("APP_ENV"),
		Port:       must("APP_PORT"),
		DBUser:     must("DB_USER"),
		DBPass:     os.Getenv("DB_PASS"), // empty allowed
		DBHost:     must("DB_HOST"),
		DBPort:     must("DB_PORT"),
		DBName:     must("DB_NAME"),
		JWTSecret:  must("JWT_SECRET"),
		BcryptCost: mustInt("BCRYPT_COST"),

		AdminEmail: getenv("ADMIN_EMAIL", "top@kwavem.com"),
		AdminPass:  must("ADMIN_PASS"),

		GitHubToken:    os.Getenv("GITHUB_TOKEN"),
		GitHubOwner:    os.Getenv("GITHUB_OWNER"),
		GitHubRepo:     os.Getenv("GITHUB_REPO"),
		GitHubAssetDir: getenv("GITHUB_ASSET_DIR", "public/assets/images"),

		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    getenv("SMTP_PORT", "587"),
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		SMTPFrom:    os.Getenv("SMTP_FROM"),
		MailEnabled: envBool("MAIL_ENABLED", false),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
