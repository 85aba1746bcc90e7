// Copyright 2025 Mediashelf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config maps environment variables into the runtime configuration
// struct. Values come from the process environment (optionally seeded from
// a .env file by the command layer); once loaded the struct is read-only.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings for the mediashelf service.
type Config struct {
	// Gateway connection
	GatewayURL   string `env:"MEDIASHELF_GATEWAY_URL,required"`
	GatewayToken string `env:"MEDIASHELF_GATEWAY_TOKEN,required"`

	// Channel is the public channel name the service monitors and posts
	// summaries to. It is also the base for origin message links.
	Channel string `env:"MEDIASHELF_CHANNEL,required"`

	// AdminID is the only user allowed to issue commands.
	AdminID int64 `env:"MEDIASHELF_ADMIN_ID,required"`

	// Storage
	DBPath   string `env:"MEDIASHELF_DB_PATH" envDefault:"./mediashelf.db"`
	InMemory bool   `env:"MEDIASHELF_IN_MEMORY" envDefault:"false"`

	// Logging
	LogLevel string `env:"MEDIASHELF_LOG_LEVEL" envDefault:"info"`
}

// Load parses environment variables into a [Config] struct. It fails when a
// required variable is missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}
