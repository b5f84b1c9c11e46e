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
	"errors"
	"io/fs"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vs49688/mailroute/cloudflare"
	"github.com/vs49688/mailroute/forwarding"
)

func DefaultConfig() CliConfig {
	return CliConfig{
		ConfigPath: DefaultConfigPath(),
		APIURL:     cloudflare.DefaultBaseURL,
		Timeout:    cloudflare.DefaultTimeout,
		LogLevel:   "info",
		LogFormat:  "text",
		Logger:     log.StandardLogger(),
	}
}

func (cfg *CliConfig) Parameters() []cli.Flag {
	def := DefaultConfig()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to the credential file",
			EnvVars:     []string{"MAILROUTE_CONFIG"},
			Destination: &cfg.ConfigPath,
			Value:       def.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "zone",
			Usage:       "zone id or name to operate on. defaults to the first zone",
			EnvVars:     []string{"MAILROUTE_ZONE"},
			Destination: &cfg.Zone,
			Value:       def.Zone,
		},
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "api base url",
			EnvVars:     []string{"MAILROUTE_API_URL"},
			Destination: &cfg.APIURL,
			Value:       def.APIURL,
			Hidden:      true,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "api request timeout",
			EnvVars:     []string{"MAILROUTE_TIMEOUT"},
			Destination: &cfg.Timeout,
			Value:       def.Timeout,
		},
		&cli.StringFlag{
			Name:        "email",
			Usage:       "account email, overrides the credential file",
			EnvVars:     []string{"MAILROUTE_EMAIL"},
			Destination: &cfg.Email,
		},
		&cli.StringFlag{
			Name:        "api-token",
			Usage:       "api token, overrides the credential file",
			EnvVars:     []string{"MAILROUTE_API_TOKEN"},
			Destination: &cfg.APIToken,
		},
		&cli.StringFlag{
			Name:        "api-key",
			Usage:       "global api key, overrides the credential file",
			EnvVars:     []string{"MAILROUTE_API_KEY"},
			Destination: &cfg.APIKey,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "logging level",
			EnvVars:     []string{"MAILROUTE_LOG_LEVEL"},
			Destination: &cfg.LogLevel,
			Value:       def.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "logging format (text/json)",
			EnvVars:     []string{"MAILROUTE_LOG_FORMAT"},
			Destination: &cfg.LogFormat,
			Value:       def.LogFormat,
		},
	}
}

func (cfg *CliConfig) logger() *log.Logger {
	if cfg.Logger == nil {
		return log.StandardLogger()
	}
	return cfg.Logger
}

func (cfg *CliConfig) ConfigureLogging() {
	logger := cfg.logger()

	logLevel, err := log.ParseLevel(cfg.LogLevel)
	if err == nil {
		logger.SetLevel(logLevel)
	}

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	}
}

// Credentials loads the credential file, then applies any overrides. A
// missing file is only an error if the overrides don't supply a token or key.
func (cfg *CliConfig) Credentials() (*Credentials, error) {
	creds, err := ReadCredentials(cfg.ConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		creds, err = &Credentials{}, nil
	}

	if err != nil {
		return nil, err
	}

	if cfg.Email != "" {
		creds.Email = cfg.Email
	}

	if cfg.APIToken != "" {
		creds.APIToken = cfg.APIToken
	}

	if cfg.APIKey != "" {
		creds.APIKey = cfg.APIKey
	}

	if creds.APIToken == "" && creds.APIKey == "" {
		return nil, ErrNoCredentials
	}

	return creds, nil
}

func (cfg *CliConfig) NewService(creds *Credentials) *cloudflare.Client {
	return cloudflare.NewClient(&cloudflare.Config{
		BaseURL:  cfg.APIURL,
		Email:    creds.Email,
		APIToken: creds.APIToken,
		APIKey:   creds.APIKey,
		Timeout:  cfg.Timeout,
	})
}

func (cfg *CliConfig) NewForwarder() (*forwarding.Forwarder, error) {
	creds, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	logger := cfg.logger().WithField("config", cfg.ConfigPath)

	return forwarding.New(&forwarding.Config{
		Service:            cfg.NewService(creds),
		DefaultDestination: creds.Email,
		Zone:               cfg.Zone,
		Logger:             logger,
	})
}
