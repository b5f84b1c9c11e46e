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
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "mailroute.toml"
	}
	return filepath.Join(dir, "mailroute", "config.toml")
}

func ReadCredentials(path string) (*Credentials, error) {
	creds := &Credentials{}
	if _, err := toml.DecodeFile(path, creds); err != nil {
		return nil, fmt.Errorf("reading credentials from %v: %w", path, err)
	}
	return creds, nil
}

// WriteCredentials replaces any existing file at path.
func WriteCredentials(path string, creds *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("writing credentials to %v: %w", path, err)
	}

	// OpenFile leaves the mode of an existing file alone.
	if err := f.Chmod(0600); err != nil {
		_ = f.Close()
		return err
	}

	if err := toml.NewEncoder(f).Encode(creds); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing credentials to %v: %w", path, err)
	}

	return f.Close()
}
