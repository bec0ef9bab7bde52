package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/shadercache"
	"github.com/matjam/shadercache/internal/ipc"
	"github.com/spf13/viper"
	"github.com/tidwall/pretty"
)

func CanonicalPath(path string) string {
	if path == "" {
		return ""
	}

	if path == "~" {
		return os.Getenv("HOME")
	}

	if strings.HasPrefix(path, "~/") {
		homeDir := os.Getenv("HOME")
		return strings.Replace(path, "~", homeDir, 1)
	}

	return path
}

// SocketPath resolves the daemon socket from config, falling back to the
// default location.
func SocketPath() string {
	if socket := viper.GetString("socket"); socket != "" {
		return CanonicalPath(socket)
	}
	return ipc.DefaultSocketPath()
}

// PidFilePath sits next to the socket.
func PidFilePath() string {
	return strings.TrimSuffix(SocketPath(), filepath.Ext(SocketPath())) + ".pid"
}

func NewClient() *ipc.Client {
	return ipc.NewClient(SocketPath())
}

func PrintJSONColored(data interface{}) {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Errorf("Error marshalling JSON: %v", err)
		return
	}

	jPretty := pretty.Color(j, nil)
	log.Info(string(jPretty))
}

// InstallDefaultConfig writes the embedded default config unless a file
// already exists, and returns its path.
func InstallDefaultConfig() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}

	configPath := filepath.Join(configDir, "shadercache", "shadercache.toml")

	if _, err := os.Stat(configPath); err == nil {
		return configPath, fmt.Errorf("config file already exists at %v", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(shadercache.DefaultConfig), 0644); err != nil {
		return "", fmt.Errorf("error writing config file: %w", err)
	}

	return configPath, nil
}
