package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir string

	SteamAPIBaseURL string
	SteamCountry    string
	SteamCurrency   int
	SteamAppID      int
	SteamTimeoutMs  int
	SteamUserAgent  string

	CurrencyLabel  string
	CurrencySymbol string
	ReportTimezone string

	SuccessDelayMs int
	ErrorDelayMs   int
	MaxRetries     int
	CooldownEvery  int
	CooldownMs     int

	OCRCommand string
	OCRArgs    []string

	MessengerProvider string
	ListenIntervalSec int
	ListenFetchMax    int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		SteamAPIBaseURL: getEnv("STEAM_API_BASE_URL", "https://steamcommunity.com/market/priceoverview/"),
		SteamCountry:    getEnv("STEAM_COUNTRY", "PH"),
		SteamCurrency:   getEnvInt("STEAM_CURRENCY", 18),
		SteamAppID:      getEnvInt("STEAM_APP_ID", 570),
		SteamTimeoutMs:  getEnvInt("STEAM_TIMEOUT_MS", 10000),
		SteamUserAgent:  getEnv("STEAM_USER_AGENT", "Mozilla/5.0 (compatible; PriceScraper/1.0; +https://example.invalid)"),

		CurrencyLabel:  getEnv("CURRENCY_LABEL", "PHP"),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₱"),
		ReportTimezone: getEnv("REPORT_TIMEZONE", "Asia/Manila"),

		SuccessDelayMs: getEnvInt("SUCCESS_DELAY_MS", 2500),
		ErrorDelayMs:   getEnvInt("ERROR_DELAY_MS", 6000),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		CooldownEvery:  getEnvInt("COOLDOWN_EVERY", 20),
		CooldownMs:     getEnvInt("COOLDOWN_MS", 12000),

		OCRCommand: getEnv("OCR_COMMAND", ""),
		OCRArgs:    getEnvList("OCR_ARGS", nil),

		MessengerProvider: getEnv("MESSENGER_PROVIDER", ""),
		ListenIntervalSec: getEnvInt("LISTEN_INTERVAL_SEC", 30),
		ListenFetchMax:    getEnvInt("LISTEN_FETCH_MAX", 10),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
