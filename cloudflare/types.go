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
	"encoding/json"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://api.cloudflare.com/client/v4"
	DefaultTimeout = 30 * time.Second
	DefaultPerPage = 50
)

type Config struct {
	BaseURL  string
	Email    string
	APIToken string
	APIKey   string
	Timeout  time.Duration

	// Transport is the base round tripper, http.DefaultTransport if nil.
	Transport http.RoundTripper
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type responseInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type resultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}

type envelope struct {
	Success    bool            `json:"success"`
	Errors     []responseInfo  `json:"errors"`
	Messages   []responseInfo  `json:"messages"`
	Result     json.RawMessage `json:"result"`
	ResultInfo *resultInfo     `json:"result_info,omitempty"`
}

type zoneAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type zone struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Account zoneAccount `json:"account"`
}

type matcher struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

type action struct {
	Type  string   `json:"type"`
	Value []string `json:"value,omitempty"`
}

type rule struct {
	ID       string    `json:"id,omitempty"`
	Tag      string    `json:"tag,omitempty"`
	Name     string    `json:"name,omitempty"`
	Enabled  *bool     `json:"enabled,omitempty"`
	Priority *int      `json:"priority,omitempty"`
	Matchers []matcher `json:"matchers"`
	Actions  []action  `json:"actions"`
}

type address struct {
	ID       string     `json:"id"`
	Tag      string     `json:"tag"`
	Email    string     `json:"email"`
	Verified *time.Time `json:"verified"`
	Created  *time.Time `json:"created"`
	Modified *time.Time `json:"modified"`
}

type settings struct {
	ID      string `json:"id"`
	Tag     string `json:"tag"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Status  string `json:"status"`
}

type tokenStatus struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	ExpiresOn *time.Time `json:"expires_on"`
	NotBefore *time.Time `json:"not_before"`
}
