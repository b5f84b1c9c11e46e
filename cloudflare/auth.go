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

package cloudflare

import (
	"net/http"

	"golang.org/x/oauth2"
)

// keyTransport adds legacy global API key headers.
type keyTransport struct {
	email string
	key   string
	base  http.RoundTripper
}

func (t *keyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r2 := req.Clone(req.Context())
	if t.email != "" {
		r2.Header.Set("X-Auth-Email", t.email)
	}
	r2.Header.Set("X-Auth-Key", t.key)
	return t.base.RoundTrip(r2)
}

func newHTTPClient(cfg *Config) *http.Client {
	rt := cfg.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}

	if cfg.APIKey != "" {
		rt = &keyTransport{email: cfg.Email, key: cfg.APIKey, base: rt}
	}

	if cfg.APIToken != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken, TokenType: "Bearer"}),
			Base:   rt,
		}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{Transport: rt, Timeout: timeout}
}
