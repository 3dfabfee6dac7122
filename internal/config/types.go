// Package config provides configuration loading and management for barragoon.
//
// Configuration is loaded using Viper, supporting YAML config files and
// environment variable overrides. The package provides sensible defaults that
// work out of the box, with the ability to customize the engine identity,
// board rendering and the web server.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//   - [ServerConfig] contains web server settings
//   - [OutputConfig] contains terminal board rendering settings
//
// Configuration priority (highest to lowest):
//  1. Environment variables (BARRAGOON_ prefix)
//  2. Config file specified by BARRAGOON_CONFIG_PATH
//  3. User config directory (platform-standard):
//     - Linux: ~/.config/barragoon/barragoon.yaml
//     - macOS: ~/Library/Application Support/barragoon/barragoon.yaml
//     - Windows: %APPDATA%\barragoon\barragoon.yaml
//  4. ./barragoon.yaml (local fallback)
//  5. [DefaultConfig] defaults
package config

// Config represents the root configuration structure.
//
// This is the main configuration container loaded by [Loader] and used
// throughout the application. Use [DefaultConfig] to get sensible defaults.
type Config struct {
	// Engine contains the identity the engine reports over the wire.
	Engine EngineConfig `mapstructure:"engine"`

	// Server contains web server configuration.
	Server ServerConfig `mapstructure:"server"`

	// Output contains terminal output formatting configuration.
	Output OutputConfig `mapstructure:"output"`

	// Library contains position library configuration.
	Library LibraryConfig `mapstructure:"library"`
}

// EngineConfig contains the identity reported in the protocol greeting.
type EngineConfig struct {
	// Name is the engine name. If empty, the built-in name is used.
	Name string `mapstructure:"name"`

	// Author is the author string. If empty, the built-in author is used.
	Author string `mapstructure:"author"`
}

// ServerConfig contains web server configuration.
type ServerConfig struct {
	// Host is the interface the server binds to.
	// Default: "localhost"
	Host string `mapstructure:"host"`

	// Port is the TCP port the server listens on.
	// Default: 8080
	Port int `mapstructure:"port"`

	// PublicDir is the directory served under /public/.
	// Default: "public"
	PublicDir string `mapstructure:"public_dir"`
}

// OutputConfig contains terminal output formatting configuration.
//
// These settings control how boards are rendered for the show, moves and
// play commands.
type OutputConfig struct {
	// Style selects the board renderer: "fancy" (box-drawing, styled)
	// or "ascii" (plain text, safe for dumb terminals).
	// Default: "fancy"
	Style string `mapstructure:"style"`

	// Color enables ANSI colors in fancy output.
	// Default: true
	Color bool `mapstructure:"color"`

	// Coordinates enables file and rank labels around the board.
	// Default: true
	Coordinates bool `mapstructure:"coordinates"`
}

// LibraryConfig contains position library configuration.
type LibraryConfig struct {
	// Path is an explicit path to positions.yaml. If empty, the library
	// is discovered in the user config directory.
	Path string `mapstructure:"path"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
//
// The defaults leave the engine identity empty (the built-in name and author
// apply), bind the server to localhost:8080 and enable colored fancy board
// output. These defaults work out of the box without any configuration file.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{},
		Server: ServerConfig{
			Host:      "localhost",
			Port:      8080,
			PublicDir: "public",
		},
		Output: OutputConfig{
			Style:       "fancy",
			Color:       true,
			Coordinates: true,
		},
		Library: LibraryConfig{},
	}
}
