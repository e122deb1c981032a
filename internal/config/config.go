package config

import (
    "fmt"
    "os"
    "strconv"
    "time"

    "gopkg.in/yaml.v3"
)

type Config struct {
    Port            string        `yaml:"port"`
    ReadTimeout     time.Duration `yaml:"read_timeout"`
    WriteTimeout    time.Duration `yaml:"write_timeout"`
    IdleTimeout     time.Duration `yaml:"idle_timeout"`
    ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
    InstanceName    string        `yaml:"instance_name"`
    LogLevel        string        `yaml:"log_level"`
    MetricsEnabled  bool          `yaml:"metrics_enabled"`
}

func Default() Config {
    return Config{
        Port:            "8080",
        ReadTimeout:     15 * time.Second,
        WriteTimeout:    15 * time.Second,
        IdleTimeout:     60 * time.Second,
        ShutdownTimeout: 10 * time.Second,
        InstanceName:    "pricing-1",
        LogLevel:        "info",
        MetricsEnabled:  true,
    }
}

// Load builds the configuration from the environment on top of the defaults.
func Load() Config {
    return fromEnv(Default())
}

// LoadWithFile reads CONFIG_FILE when it is set, then applies the environment
// on top of it.
func LoadWithFile() (Config, error) {
    cfg := Default()
    if path, ok := os.LookupEnv("CONFIG_FILE"); ok && path != "" {
        var err error
        cfg, err = LoadFile(path, cfg)
        if err != nil {
            return Config{}, err
        }
    }
    return fromEnv(cfg), nil
}

// LoadFile overlays the YAML file at path onto base.
func LoadFile(path string, base Config) (Config, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return Config{}, fmt.Errorf("read config file: %w", err)
    }
    cfg := base
    if err := yaml.Unmarshal(data, &cfg); err != nil {
        return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
    }
    return cfg, nil
}

func fromEnv(base Config) Config {
    return Config{
        Port:            getEnv("BACKEND_PORT", base.Port),
        ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", base.ReadTimeout),
        WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", base.WriteTimeout),
        IdleTimeout:     getEnvAsDuration("IDLE_TIMEOUT", base.IdleTimeout),
        ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", base.ShutdownTimeout),
        InstanceName:    getEnv("INSTANCE_NAME", base.InstanceName),
        LogLevel:        getEnv("LOG_LEVEL", base.LogLevel),
        MetricsEnabled:  getEnvAsBool("METRICS_ENABLED", base.MetricsEnabled),
    }
}

func getEnv(key, defaultValue string) string {
    if value, exists := os.LookupEnv(key); exists {
        return value
    }
    return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
    if value, exists := os.LookupEnv(key); exists {
        if dur, err := time.ParseDuration(value); err == nil {
            return dur
        }
    }
    return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
    if value, exists := os.LookupEnv(key); exists {
        if b, err := strconv.ParseBool(value); err == nil {
            return b
        }
    }
    return defaultValue
}
