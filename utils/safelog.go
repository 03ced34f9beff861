// Package utils provides level-filtered logging that masks sensitive values
// (API keys, account balances) when running in production mode.
package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

var (
	// IsProduction switches on masking of sensitive log content.
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	LogLevel = getLogLevel()
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func getLogLevel() int {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

var (
	// Anthropic API keys start with sk-ant-.
	apiKeyRegex = regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]+`)

	// Currency amounts with a pound sign or GBP suffix.
	amountRegex = regexp.MustCompile(`(£|GBP\s?)\d+([.,]\d{1,2})?`)
)

// MaskString masks sensitive data in production; a no-op otherwise.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}
	result := apiKeyRegex.ReplaceAllString(input, "sk-ant-***")
	result = amountRegex.ReplaceAllString(result, "£***")
	return result
}

// MaskKey shortens an API key to a recognisable prefix for startup logs.
func MaskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 10 {
		return "***"
	}
	return key[:10] + "..."
}

func Debug(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	log.Printf("[DEBUG] %s", MaskString(fmt.Sprintf(format, args...)))
}

func Info(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Printf("[INFO] %s", MaskString(fmt.Sprintf(format, args...)))
}

func Warn(format string, args ...interface{}) {
	if LogLevel > LogLevelWarn {
		return
	}
	log.Printf("[WARN] %s", MaskString(fmt.Sprintf(format, args...)))
}

func Error(format string, args ...interface{}) {
	log.Printf("[ERROR] %s", MaskString(fmt.Sprintf(format, args...)))
}

// LogPayment logs one processed payment without leaking amounts in production.
func LogPayment(merchant string, amount, roundup, balance string, charity string) {
	if roundup != "0" && roundup != "0.00" {
		Info("💳 Payment processed: £%s at %s | roundup £%s to %s | balance £%s",
			amount, merchant, roundup, charity, balance)
		return
	}
	Info("💳 Payment processed: £%s at %s (no roundup)", amount, merchant)
}

func GetEnvMode() string {
	if IsProduction {
		return "production"
	}
	return "development"
}
