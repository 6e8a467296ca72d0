// Package daemonconfig loads the daemon's configuration file: the
// listen socket path, log level, and session concurrency limit.
package daemonconfig

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kdbkit/kdbkit/kdberr"
)

// Config is the daemon's on-disk configuration, unmarshalled from YAML.
type Config struct {
	ListenSocket  string        `yaml:"listenSocket" json:"listenSocket"`
	LogLevel      string        `yaml:"logLevel" json:"logLevel"`
	MaxSessions   int           `yaml:"maxSessions" json:"maxSessions"`
	ShutdownGrace time.Duration `yaml:"shutdownGrace" json:"shutdownGrace"`
}

// Defaults returns the configuration used when no file is supplied.
func Defaults() Config {
	return Config{
		ListenSocket:  "/run/kdbd/kdbd.sock",
		LogLevel:      "info",
		MaxSessions:   256,
		ShutdownGrace: 5 * time.Second,
	}
}

// Load reads and parses the YAML configuration file at path over
// Defaults: a field the file does not mention keeps its default value,
// and a field the file sets, even to a zero or empty value, replaces it.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, kdberr.Wrapf(kdberr.IoError, "read daemon config %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, kdberr.Wrapf(kdberr.ProtocolError, "parse daemon config %s: %v", path, err)
	}
	return cfg, nil
}
