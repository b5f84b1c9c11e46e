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

package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type APIAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type APIZone struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Account APIAccount `json:"account"`
}

type APIMatcher struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

type APIAction struct {
	Type  string   `json:"type"`
	Value []string `json:"value,omitempty"`
}

type APIRule struct {
	ID       string       `json:"id"`
	Tag      string       `json:"tag"`
	Name     string       `json:"name"`
	Enabled  bool         `json:"enabled"`
	Priority int          `json:"priority"`
	Matchers []APIMatcher `json:"matchers"`
	Actions  []APIAction  `json:"actions"`
}

type APIAddress struct {
	ID       string     `json:"id"`
	Tag      string     `json:"tag"`
	Email    string     `json:"email"`
	Verified *time.Time `json:"verified"`
}

type apiMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type apiResultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}

type apiEnvelope struct {
	Success    bool           `json:"success"`
	Errors     []apiMessage   `json:"errors"`
	Messages   []apiMessage   `json:"messages"`
	Result     interface{}    `json:"result"`
	ResultInfo *apiResultInfo `json:"result_info,omitempty"`
}

// FakeAPI is an in-memory stand-in for the email routing REST API. It
// enforces the validation the real service does: matchers must be in the
// zone's domain, must be unique, and must forward to a verified address.
type FakeAPI struct {
	Token string

	// PageSize caps per_page, to exercise pagination.
	PageSize int

	mu        sync.Mutex
	Zones     []APIZone
	Rules     map[string][]APIRule
	Addresses map[string][]APIAddress
	Requests  []string
}

func NewFakeAPI(token string) *FakeAPI {
	return &FakeAPI{
		Token:     token,
		Rules:     map[string][]APIRule{},
		Addresses: map[string][]APIAddress{},
	}
}

func (api *FakeAPI) AddZone(id string, name string, accountID string) {
	api.mu.Lock()
	defer api.mu.Unlock()

	api.Zones = append(api.Zones, APIZone{ID: id, Name: name, Account: APIAccount{ID: accountID, Name: accountID + "'s account"}})
}

func (api *FakeAPI) AddAddress(accountID string, email string, verified bool) {
	api.mu.Lock()
	defer api.mu.Unlock()

	addr := APIAddress{ID: strings.ReplaceAll(uuid.NewString(), "-", ""), Email: email}
	addr.Tag = addr.ID
	if verified {
		now := time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)
		addr.Verified = &now
	}
	api.Addresses[accountID] = append(api.Addresses[accountID], addr)
}

func (api *FakeAPI) AddRule(zoneID string, rule APIRule) APIRule {
	api.mu.Lock()
	defer api.mu.Unlock()

	if rule.ID == "" {
		rule.ID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	rule.Tag = rule.ID
	api.Rules[zoneID] = append(api.Rules[zoneID], rule)
	return rule
}

func (api *FakeAPI) ZoneRules(zoneID string) []APIRule {
	api.mu.Lock()
	defer api.mu.Unlock()

	return append([]APIRule(nil), api.Rules[zoneID]...)
}

// RequestLog returns "METHOD /path" for every request received so far.
func (api *FakeAPI) RequestLog() []string {
	api.mu.Lock()
	defer api.mu.Unlock()

	return append([]string(nil), api.Requests...)
}

func writeEnvelope(w http.ResponseWriter, status int, env *apiEnvelope) {
	if env.Errors == nil {
		env.Errors = []apiMessage{}
	}

	if env.Messages == nil {
		env.Messages = []apiMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func writeError(w http.ResponseWriter, status int, code int, msg string) {
	writeEnvelope(w, status, &apiEnvelope{Errors: []apiMessage{{Code: code, Message: msg}}})
}

func writeResult(w http.ResponseWriter, result interface{}) {
	writeEnvelope(w, http.StatusOK, &apiEnvelope{Success: true, Result: result})
}

func paginate[T any](api *FakeAPI, w http.ResponseWriter, r *http.Request, items []T) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 {
		perPage = 20
	}

	if api.PageSize > 0 && perPage > api.PageSize {
		perPage = api.PageSize
	}

	totalPages := (len(items) + perPage - 1) / perPage
	start := (page - 1) * perPage
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	chunk := items[start:end]
	if chunk == nil {
		chunk = []T{}
	}

	writeEnvelope(w, http.StatusOK, &apiEnvelope{
		Success: true,
		Result:  chunk,
		ResultInfo: &apiResultInfo{
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
			Count:      len(chunk),
			TotalCount: len(items),
		},
	})
}

func (api *FakeAPI) findZone(id string) (APIZone, bool) {
	for _, z := range api.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return APIZone{}, false
}

func (api *FakeAPI) isVerified(accountID string, email string) bool {
	for _, a := range api.Addresses[accountID] {
		if a.Email == email && a.Verified != nil {
			return true
		}
	}
	return false
}

func (api *FakeAPI) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.Requests = append(api.Requests, fmt.Sprintf("%v %v", r.Method, r.URL.Path))
		api.mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer "+api.Token {
			writeError(w, http.StatusUnauthorized, 10000, "Authentication error")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (api *FakeAPI) zoneHandler(fn func(w http.ResponseWriter, r *http.Request, zone APIZone)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()

		zone, ok := api.findZone(mux.Vars(r)["zone"])
		if !ok {
			writeError(w, http.StatusNotFound, 1001, "Invalid zone identifier")
			return
		}
		fn(w, r, zone)
	}
}

func (api *FakeAPI) createRule(w http.ResponseWriter, r *http.Request, zone APIZone) {
	var rule APIRule
	rule.Enabled = true
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		writeError(w, http.StatusBadRequest, 6003, "Invalid request headers")
		return
	}

	if len(rule.Matchers) != 1 || rule.Matchers[0].Type != "literal" {
		writeError(w, http.StatusBadRequest, 2020, "Invalid rule operation")
		return
	}

	matcher := rule.Matchers[0].Value
	if !strings.HasSuffix(matcher, "@"+zone.Name) {
		writeError(w, http.StatusBadRequest, 2020, fmt.Sprintf("Invalid matcher %v for zone %v", matcher, zone.Name))
		return
	}

	for _, existing := range api.Rules[zone.ID] {
		for _, m := range existing.Matchers {
			if m.Value == matcher {
				writeError(w, http.StatusConflict, 2023, "Duplicated rule matcher")
				return
			}
		}
	}

	for _, a := range rule.Actions {
		for _, to := range a.Value {
			if !api.isVerified(zone.Account.ID, to) {
				writeError(w, http.StatusBadRequest, 2021, fmt.Sprintf("Destination address %v not verified", to))
				return
			}
		}
	}

	rule.ID = strings.ReplaceAll(uuid.NewString(), "-", "")
	rule.Tag = rule.ID
	api.Rules[zone.ID] = append(api.Rules[zone.ID], rule)
	writeResult(w, rule)
}

func (api *FakeAPI) deleteRule(w http.ResponseWriter, r *http.Request, zone APIZone) {
	id := mux.Vars(r)["rule"]
	rules := api.Rules[zone.ID]
	for i, rule := range rules {
		if rule.Tag == id {
			api.Rules[zone.ID] = append(rules[:i:i], rules[i+1:]...)
			writeResult(w, rule)
			return
		}
	}

	writeError(w, http.StatusNotFound, 2020, "Rule not found")
}

func (api *FakeAPI) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(api.authenticate)

	r.HandleFunc("/user/tokens/verify", func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, map[string]interface{}{"id": "token-id", "status": "active", "expires_on": nil})
	}).Methods(http.MethodGet)

	r.HandleFunc("/zones", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		paginate(api, w, r, api.Zones)
	}).Methods(http.MethodGet)

	r.HandleFunc("/zones/{zone}/email/routing", api.zoneHandler(func(w http.ResponseWriter, r *http.Request, zone APIZone) {
		writeResult(w, map[string]interface{}{
			"tag":     zone.ID,
			"name":    zone.Name,
			"enabled": true,
			"status":  "ready",
		})
	})).Methods(http.MethodGet)

	r.HandleFunc("/zones/{zone}/email/routing/rules", api.zoneHandler(func(w http.ResponseWriter, r *http.Request, zone APIZone) {
		paginate(api, w, r, api.Rules[zone.ID])
	})).Methods(http.MethodGet)

	r.HandleFunc("/zones/{zone}/email/routing/rules", api.zoneHandler(api.createRule)).Methods(http.MethodPost)
	r.HandleFunc("/zones/{zone}/email/routing/rules/{rule}", api.zoneHandler(api.deleteRule)).Methods(http.MethodDelete)

	r.HandleFunc("/accounts/{account}/email/routing/addresses", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		paginate(api, w, r, api.Addresses[mux.Vars(r)["account"]])
	}).Methods(http.MethodGet)

	return r
}

// BuildTestAPIServer serves api over HTTP for the duration of the test,
// returning the base URL.
func BuildTestAPIServer(t *testing.T, api *FakeAPI) string {
	s := httptest.NewServer(api.Handler())
	t.Cleanup(s.Close)
	return s.URL
}
