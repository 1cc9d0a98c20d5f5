package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

const defaultConfigTemplate = "PORT=3000\n" +
	"MODE=development\n" +
	"CERT_FILE=certs/server.crt\n" +
	"KEY_FILE=certs/server.key\n" +
	"DATA_FILE=data/news.json\n" +
	"UPLOAD_PATH=uploads\n" +
	"WEB_PATH=web\n" +
	"ALLOWED_ORIGINS=https://localhost:3000\n" +
	"ENABLE_GZIP=true\n"

// LoadConfig reads the ini configuration file and then applies environment
// variable overrides on top of it.
func LoadConfig() error {
	if err := loadConfigFile(*ConfigPath); err != nil {
		return err
	}
	return applyConfigMap(envConfigMap())
}

func loadConfigFile(configPath string) error {
	if err := ensureConfigFile(configPath); err != nil {
		return err
	}

	configMap, err := parseIniConfig(configPath)
	if err != nil {
		return err
	}

	if err := applyConfigMap(configMap); err != nil {
		return fmt.Errorf("apply config file %s: %w", configPath, err)
	}

	return nil
}

func ensureConfigFile(configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", configDir, err)
	}

	configFile, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create config file %s: %w", configPath, err)
	}
	defer configFile.Close()

	if _, err := configFile.WriteString(defaultConfigTemplate); err != nil {
		return fmt.Errorf("write default config file %s: %w", configPath, err)
	}

	return nil
}

func parseIniConfig(path string) (map[string]string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse ini config %s: %w", path, err)
	}

	configMap := make(map[string]string)
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			configKey := strings.ToUpper(strings.TrimSpace(key.Name()))
			if configKey == "" {
				continue
			}
			configMap[configKey] = strings.TrimSpace(key.Value())
		}
	}

	return configMap, nil
}

func envConfigMap() map[string]string {
	keys := []string{
		"PORT", "MODE", "CERT_FILE", "KEY_FILE", "DATA_FILE",
		"UPLOAD_PATH", "WEB_PATH", "ALLOWED_ORIGINS", "ENABLE_GZIP",
	}

	configMap := make(map[string]string)
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			configMap[key] = value
		}
	}

	return configMap
}

func applyConfigMap(configMap map[string]string) error {
	if configValue, ok := configMap["MODE"]; ok && configValue != "" {
		if configValue != ModeDevelopment && configValue != ModeProduction {
			return fmt.Errorf("invalid value for MODE: %s", configValue)
		}
		Mode = configValue
	}

	if configValue, ok := configMap["CERT_FILE"]; ok && configValue != "" {
		CertFile = configValue
	}

	if configValue, ok := configMap["KEY_FILE"]; ok && configValue != "" {
		KeyFile = configValue
	}

	if configValue, ok := configMap["DATA_FILE"]; ok && configValue != "" {
		DataFile = configValue
	}

	if configValue, ok := configMap["UPLOAD_PATH"]; ok && configValue != "" {
		UploadPath = configValue
	}

	if configValue, ok := configMap["WEB_PATH"]; ok && configValue != "" {
		WebPath = configValue
	}

	if configValue, ok := configMap["ALLOWED_ORIGINS"]; ok && configValue != "" {
		origins := strings.Split(configValue, ",")
		AllowedOrigins = nil
		for _, origin := range origins {
			if origin = strings.TrimSpace(origin); origin != "" {
				AllowedOrigins = append(AllowedOrigins, origin)
			}
		}
	}

	if configValue, ok := configMap["PORT"]; ok && configValue != "" {
		portInt, err := strconv.Atoi(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for PORT: %w", err)
		}
		*Port = portInt
	}

	if configValue, ok := configMap["ENABLE_GZIP"]; ok && configValue != "" {
		enableGzipBool, err := strconv.ParseBool(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for ENABLE_GZIP: %w", err)
		}
		EnableGzip = enableGzipBool
	}

	return nil
}
