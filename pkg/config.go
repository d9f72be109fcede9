package netconfd

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/ini.v1"
)

type ServerConfig struct {
	Bind           string
	Port           int
	Verbose        bool
	RootHelper     string
	CommandTimeout time.Duration
	CacheTTL       time.Duration
	CacheFile      string
}

func DefaultConfig() ServerConfig {
	return ServerConfig{
		Bind:           "127.0.0.1",
		Port:           8080,
		CommandTimeout: 30 * time.Second,
	}
}

// LoadFromFile overrides fields with the keys present in an INI file, eg.
//
//	port = 8080
//	root_helper = /run/wrappers/bin/_netroot
//	cache_ttl = 5m
func (c *ServerConfig) LoadFromFile(filename string) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, filename)
	if err != nil {
		return fmt.Errorf("cannot load config %q: %w", filename, err)
	}

	section := cfg.Section("")
	c.Bind = section.Key("bind").MustString(c.Bind)
	c.Port = section.Key("port").MustInt(c.Port)
	c.Verbose = section.Key("verbose").MustBool(c.Verbose)
	c.RootHelper = section.Key("root_helper").MustString(c.RootHelper)
	c.CommandTimeout = section.Key("command_timeout").MustDuration(c.CommandTimeout)
	c.CacheTTL = section.Key("cache_ttl").MustDuration(c.CacheTTL)
	c.CacheFile = section.Key("cache_file").MustString(c.CacheFile)

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d in %q", c.Port, filename)
	}
	return nil
}

// CommandPrefix is what every system command is run through.
func (c ServerConfig) CommandPrefix() []string {
	if strings.TrimSpace(c.RootHelper) == "" {
		return nil
	}
	return []string{c.RootHelper}
}
