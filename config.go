// This file is part of the program "pa-cycle-profile".
// Please see the LICENSE file for copyright information.

package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// config holds the optional settings from config.toml. The file is only ever
// read, never created.
type config struct {
	Server string
	Debug  bool
	Notify bool
}

const configFile = "config.toml"

func readConfig(dir string) (*config, error) {
	conf := config{}
	f := filepath.Join(dir, configFile)

	ok, err := exists(f)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't check if config file exists")
	}
	if !ok {
		log.Printf("No config file at %s, using defaults\n", f)
		return &conf, nil
	}

	if _, err := toml.DecodeFile(f, &conf); err != nil {
		return nil, errors.Wrapf(err, "couldn't read config file %s", f)
	}
	log.Printf("Read config file %s\n", f)

	return &conf, nil
}

// serverAddress picks the socket to connect to: the config file first, then
// $PULSE_SERVER. An empty result means the client library's default.
func (c *config) serverAddress() string {
	addr := c.Server
	if addr == "" {
		addr = os.Getenv("PULSE_SERVER")
	}
	return strings.TrimPrefix(addr, "unix:")
}

func configDir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), appName)
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			log.Printf("Resolved $%s to '%s'\n", xdg, dir)
			return dir
		}

	}

	log.Printf("Couldn't resolve $%s falling back to '%s'\n", xdg, fallback)
	return fallback
}
