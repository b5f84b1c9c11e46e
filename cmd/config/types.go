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
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	ErrNoCredentials = errors.New("no credentials found, run \"mailroute setup\" first")
)

// Credentials are persisted in plain text.
type Credentials struct {
	Email    string `toml:"email"`
	APIToken string `toml:"api_token"`
	APIKey   string `toml:"api_key,omitempty"`
}

type CliConfig struct {
	ConfigPath string
	Zone       string
	APIURL     string
	Timeout    time.Duration

	// Override the credential file when set.
	Email    string
	APIToken string
	APIKey   string

	LogLevel  string
	LogFormat string

	Logger *log.Logger
}
