/*
 * MailRoute - Copyright (C) 2022 Zane van Iperen.
 *    Contact: zane@zanevaniperen.com
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 2, and only
 * version 2 as published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 59 Temple Place, Suite 330, Boston, MA  02111-1307  USA
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func getTestConfig(t *testing.T) CliConfig {
	cfg := DefaultConfig()
	cfg.ConfigPath = filepath.Join(t.TempDir(), "mailroute", "config.toml")
	cfg.Logger = log.New()
	return cfg
}

func TestCredentials_File(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		cfg := getTestConfig(t)

		err := WriteCredentials(cfg.ConfigPath, &Credentials{Email: "me@mail.com", APIToken: "token", APIKey: "key"})
		if !assert.NoError(t, err) {
			t.FailNow()
		}

		raw, err := os.ReadFile(cfg.ConfigPath)
		assert.NoError(t, err)
		assert.Contains(t, string(raw), `email = "me@mail.com"`)
		assert.Contains(t, string(raw), `api_token = "token"`)
		assert.Contains(t, string(raw), `api_key = "key"`)

		info, err := os.Stat(cfg.ConfigPath)
		assert.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		creds, err := ReadCredentials(cfg.ConfigPath)
		assert.NoError(t, err)
		assert.Equal(t, &Credentials{Email: "me@mail.com", APIToken: "token", APIKey: "key"}, creds)
	})

	t.Run("overwrite", func(t *testing.T) {
		cfg := getTestConfig(t)

		assert.NoError(t, WriteCredentials(cfg.ConfigPath, &Credentials{Email: "old@mail.com", APIToken: "old-token", APIKey: "old-key"}))
		assert.NoError(t, WriteCredentials(cfg.ConfigPath, &Credentials{Email: "new@mail.com", APIToken: "new-token"}))

		creds, err := ReadCredentials(cfg.ConfigPath)
		assert.NoError(t, err)
		assert.Equal(t, &Credentials{Email: "new@mail.com", APIToken: "new-token"}, creds)
	})

	t.Run("invalid", func(t *testing.T) {
		cfg := getTestConfig(t)
		assert.NoError(t, os.MkdirAll(filepath.Dir(cfg.ConfigPath), 0700))
		assert.NoError(t, os.WriteFile(cfg.ConfigPath, []byte("email = "), 0600))

		_, err := ReadCredentials(cfg.ConfigPath)
		assert.Error(t, err)
	})
}

func TestCliConfig_Credentials(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		cfg := getTestConfig(t)

		_, err := cfg.Credentials()
		assert.ErrorIs(t, err, ErrNoCredentials)
	})

	t.Run("overrides_only", func(t *testing.T) {
		cfg := getTestConfig(t)
		cfg.Email = "me@mail.com"
		cfg.APIToken = "token"

		creds, err := cfg.Credentials()
		assert.NoError(t, err)
		assert.Equal(t, &Credentials{Email: "me@mail.com", APIToken: "token"}, creds)
	})

	t.Run("file_with_overrides", func(t *testing.T) {
		cfg := getTestConfig(t)
		assert.NoError(t, WriteCredentials(cfg.ConfigPath, &Credentials{Email: "me@mail.com", APIToken: "token", APIKey: "key"}))

		cfg.APIToken = "other-token"

		creds, err := cfg.Credentials()
		assert.NoError(t, err)
		assert.Equal(t, &Credentials{Email: "me@mail.com", APIToken: "other-token", APIKey: "key"}, creds)
	})

	t.Run("forwarder", func(t *testing.T) {
		cfg := getTestConfig(t)
		assert.NoError(t, WriteCredentials(cfg.ConfigPath, &Credentials{Email: "me@mail.com", APIToken: "token"}))

		f, err := cfg.NewForwarder()
		assert.NoError(t, err)
		assert.NotNil(t, f)
	})
}

func TestCliConfig_ConfigureLogging(t *testing.T) {
	cfg := getTestConfig(t)
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	cfg.ConfigureLogging()
	assert.Equal(t, log.DebugLevel, cfg.Logger.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, cfg.Logger.Formatter)

	t.Run("invalid_level_ignored", func(t *testing.T) {
		cfg := getTestConfig(t)
		cfg.LogLevel = "loud"

		cfg.ConfigureLogging()
		assert.Equal(t, log.InfoLevel, cfg.Logger.GetLevel())
	})
}
