// hotreload.go: dynamic tuning with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotTuning watches a configuration file and keeps a DomainConfig
// template up to date as it changes. It never touches a live Domain:
// a domain's thread table is sized once at NewDomain and its shape is
// load-bearing for every hazard slot index already handed out, so a
// size change can only be picked up by constructing the next Domain
// from DomainConfig's result. This mirrors the teacher's own
// restriction that a running cache's MaxSize cannot be hot-reloaded,
// only read back out for the next construction.
type HotTuning struct {
	watcher *argus.Watcher
	mu      sync.RWMutex
	config  DomainConfig

	// OnReload is called after the template is successfully reloaded.
	// Must be fast and non-blocking.
	OnReload func(oldConfig, newConfig DomainConfig)
}

// HotTuningOptions configures hot-reload behavior.
type HotTuningOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after the template is successfully reloaded.
	OnReload func(oldConfig, newConfig DomainConfig)

	// Logger for hot reload diagnostics. Default: NoOpLogger.
	Logger Logger
}

// NewHotTuning creates a hot-reloadable DomainConfig template and
// starts watching the configuration file immediately.
//
// Example configuration file (YAML):
//
//	domain:
//	  initial_capacity: 64
//	  max_threads: 256
//
// Supported configuration keys:
//   - domain.initial_capacity (int): starting thread-table size for new domains
//   - domain.max_threads (int): cap on registered threads for new domains
func NewHotTuning(opts HotTuningOptions) (*HotTuning, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	ht := &HotTuning{
		OnReload: opts.OnReload,
		config:   DefaultDomainConfig(),
	}

	argusConfig := argus.Config{PollInterval: opts.PollInterval}
	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, ht.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	ht.watcher = watcher

	return ht, nil
}

// Start begins watching the configuration file for changes.
func (ht *HotTuning) Start() error {
	if ht.watcher.IsRunning() {
		return nil
	}
	return ht.watcher.Start()
}

// Stop stops watching the configuration file.
func (ht *HotTuning) Stop() error {
	return ht.watcher.Stop()
}

// DomainConfig returns the current tuning template (thread-safe). Pass
// the result to NewDomain to construct a domain with the latest
// tuning; existing domains are unaffected.
func (ht *HotTuning) DomainConfig() DomainConfig {
	ht.mu.RLock()
	defer ht.mu.RUnlock()
	return ht.config
}

func (ht *HotTuning) handleConfigChange(data map[string]interface{}) {
	ht.mu.Lock()
	old := ht.config
	next := ht.parseConfig(data)
	ht.config = next
	ht.mu.Unlock()

	if ht.OnReload != nil {
		ht.OnReload(old, next)
	}
}

func parsePositiveIntField(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case float64:
		if v > 0 {
			return int(v), true
		}
	}
	return 0, false
}

func (ht *HotTuning) parseConfig(data map[string]interface{}) DomainConfig {
	cfg := DefaultDomainConfig()

	section, ok := data["domain"].(map[string]interface{})
	if !ok {
		if _, hasCap := data["initial_capacity"]; hasCap {
			section = data
		} else {
			return cfg
		}
	}

	if v, ok := parsePositiveIntField(section["initial_capacity"]); ok {
		cfg.InitialCapacity = v
	}
	if v, ok := parsePositiveIntField(section["max_threads"]); ok {
		cfg.MaxThreads = v
	}

	cfg.Validate()
	return cfg
}
