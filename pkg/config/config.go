// Package config loads and saves the antidebug tool configuration file.
package config

import (
	"fmt"
	"os"
	"os/user"
	"path"

	"gopkg.in/yaml.v2"
)

const (
	configDir  string = ".antidebug"
	configFile string = "config.yml"
)

// Config defines all configuration options available to be set through the
// config file. Everything in here concerns the CLI and its debugger harness;
// the library itself takes no configuration.
type Config struct {
	// Debugger is the default debugger the harness command drives. Either a
	// bare tool name ("gdb", "lldb") or a full command line in which "{pid}"
	// is replaced with the target pid.
	Debugger string `yaml:"debugger"`

	// ExpectAttach is the default expectation for the harness command: true
	// means the external attach is expected to succeed.
	ExpectAttach bool `yaml:"expect-attach"`

	// AttachTimeout is how many seconds the harness waits for the debugger
	// to finish before giving up. Zero means no limit.
	AttachTimeout int `yaml:"attach-timeout,omitempty"`
}

// LoadConfig attempts to populate a Config object from the config.yml file.
func LoadConfig() *Config {
	err := createConfigPath()
	if err != nil {
		fmt.Printf("Could not create config directory: %v.", err)
		return &Config{}
	}
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		fmt.Printf("Unable to get config file path: %v.", err)
		return &Config{}
	}

	f, err := os.Open(fullConfigFile)
	if err != nil {
		f, err = createDefaultConfig(fullConfigFile)
		if err != nil {
			fmt.Printf("Error creating default config file: %v", err)
			return &Config{}
		}
	}
	defer func() {
		err := f.Close()
		if err != nil {
			fmt.Printf("Closing config file failed: %v.", err)
		}
	}()

	data, err := os.ReadFile(fullConfigFile)
	if err != nil {
		fmt.Printf("Unable to read config data: %v.", err)
		return &Config{}
	}

	c, err := decodeConfig(data)
	if err != nil {
		fmt.Printf("Unable to decode config file: %v.", err)
		return &Config{}
	}
	return c
}

func decodeConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveConfig will marshal and save the config struct to disk.
func SaveConfig(conf *Config) error {
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(*conf)
	if err != nil {
		return err
	}

	f, err := os.Create(fullConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(out)
	return err
}

func createDefaultConfig(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("unable to create config file: %v", err)
	}
	err = writeDefaultConfig(f)
	if err != nil {
		return nil, fmt.Errorf("unable to write default configuration: %v", err)
	}
	return f, nil
}

func writeDefaultConfig(f *os.File) error {
	_, err := f.WriteString(
		`# Configuration file for the antidebug tool.

# This is the default configuration file. Available options are provided, but disabled.
# Delete the leading hash mark to enable an item.

# Default debugger for the harness command. Either a bare tool name (gdb or
# lldb) or a full command line in which {pid} is replaced with the target pid.
# debugger: gdb

# Whether the harness command expects the external attach to succeed.
# expect-attach: false

# Seconds the harness waits for the debugger before giving up (0: no limit).
# attach-timeout: 0
`)
	return err
}

func createConfigPath() error {
	path, err := GetConfigFilePath("")
	if err != nil {
		return err
	}
	return os.MkdirAll(path, 0700)
}

// GetConfigFilePath gets the full path to the given config file name.
func GetConfigFilePath(file string) (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return path.Join(usr.HomeDir, configDir, file), nil
}
