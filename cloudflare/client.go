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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vs49688/mailroute/routing"
)

var _ routing.Service = (*Client)(nil)

func NewClient(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: newHTTPClient(cfg),
	}
}

func joinReasons(infos []responseInfo) string {
	reasons := make([]string, 0, len(infos))
	for _, info := range infos {
		reasons = append(reasons, fmt.Sprintf("%v: %v", info.Code, info.Message))
	}
	return strings.Join(reasons, "; ")
}

func (c *Client) do(ctx context.Context, op string, method string, path string, query url.Values, body interface{}) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%v: marshalling request: %w", op, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%v: creating request: %w", op, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	logger := log.WithFields(log.Fields{"op": op, "method": method, "url": reqURL})
	logger.Trace("api_request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, routing.NewUnavailableError(op, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, routing.NewUnavailableError(op, resp.StatusCode, err)
	}

	logger.WithField("status", resp.StatusCode).Trace("api_response")

	env := &envelope{}
	decodeErr := json.Unmarshal(raw, env)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden || resp.StatusCode >= 500 {
		reason := http.StatusText(resp.StatusCode)
		if decodeErr == nil && len(env.Errors) > 0 {
			reason = joinReasons(env.Errors)
		}
		return nil, &routing.RemoteError{Kind: routing.ErrRemoteUnavailable, Op: op, Status: resp.StatusCode, Reason: reason}
	}

	if decodeErr != nil {
		return nil, routing.NewUnavailableError(op, resp.StatusCode, decodeErr)
	}

	if !env.Success || resp.StatusCode >= 400 {
		reason := joinReasons(env.Errors)
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}
		return nil, routing.NewRejectedError(op, resp.StatusCode, reason)
	}

	return env, nil
}

func decodeResult(op string, env *envelope, out interface{}) error {
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return routing.NewUnavailableError(op, 0, errors.New("response has no result"))
	}

	if err := json.Unmarshal(env.Result, out); err != nil {
		return routing.NewUnavailableError(op, 0, err)
	}
	return nil
}

// listAll follows result_info pagination until every page has been read.
func listAll[T any](ctx context.Context, c *Client, op string, path string) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(DefaultPerPage))

		env, err := c.do(ctx, op, http.MethodGet, path, q, nil)
		if err != nil {
			return nil, err
		}

		var items []T
		if err := decodeResult(op, env, &items); err != nil {
			return nil, err
		}
		all = append(all, items...)

		if env.ResultInfo == nil || page >= env.ResultInfo.TotalPages || len(items) == 0 {
			return all, nil
		}
	}
}

func (c *Client) VerifyToken(ctx context.Context) (*routing.TokenStatus, error) {
	const op = "verify_token"

	env, err := c.do(ctx, op, http.MethodGet, "/user/tokens/verify", nil, nil)
	if err != nil {
		return nil, err
	}

	tok := tokenStatus{}
	if err := decodeResult(op, env, &tok); err != nil {
		return nil, err
	}

	return &routing.TokenStatus{ID: tok.ID, Status: tok.Status, ExpiresOn: timeOrZero(tok.ExpiresOn)}, nil
}

func (c *Client) ListZones(ctx context.Context) ([]routing.Zone, error) {
	zones, err := listAll[zone](ctx, c, "list_zones", "/zones")
	if err != nil {
		return nil, err
	}

	out := make([]routing.Zone, 0, len(zones))
	for _, z := range zones {
		out = append(out, routing.Zone{
			ID:          z.ID,
			Name:        z.Name,
			AccountID:   z.Account.ID,
			AccountName: z.Account.Name,
		})
	}
	return out, nil
}

func (c *Client) GetRoutingSettings(ctx context.Context, zoneID string) (*routing.Settings, error) {
	const op = "get_routing_settings"

	env, err := c.do(ctx, op, http.MethodGet, fmt.Sprintf("/zones/%v/email/routing", url.PathEscape(zoneID)), nil, nil)
	if err != nil {
		return nil, err
	}

	s := settings{}
	if err := decodeResult(op, env, &s); err != nil {
		return nil, err
	}

	id := s.ID
	if id == "" {
		id = s.Tag
	}

	return &routing.Settings{ID: id, Name: s.Name, Enabled: s.Enabled, Status: s.Status}, nil
}

func rulesPath(zoneID string) string {
	return fmt.Sprintf("/zones/%v/email/routing/rules", url.PathEscape(zoneID))
}

func toRoutingRule(r *rule) routing.Rule {
	out := routing.Rule{
		ID:       r.ID,
		Name:     r.Name,
		Enabled:  true,
		Priority: r.Priority,
		Matchers: make([]routing.Matcher, 0, len(r.Matchers)),
		Actions:  make([]routing.Action, 0, len(r.Actions)),
	}

	if out.ID == "" {
		out.ID = r.Tag
	}

	if r.Enabled != nil {
		out.Enabled = *r.Enabled
	}

	for _, m := range r.Matchers {
		out.Matchers = append(out.Matchers, routing.Matcher{Type: routing.MatcherType(m.Type), Field: m.Field, Value: m.Value})
	}

	for _, a := range r.Actions {
		out.Actions = append(out.Actions, routing.Action{Type: routing.ActionType(a.Type), Value: a.Value})
	}
	return out
}

func (c *Client) ListRules(ctx context.Context, zoneID string) ([]routing.Rule, error) {
	rules, err := listAll[rule](ctx, c, "list_rules", rulesPath(zoneID))
	if err != nil {
		return nil, err
	}

	out := make([]routing.Rule, 0, len(rules))
	for i := range rules {
		out = append(out, toRoutingRule(&rules[i]))
	}
	return out, nil
}

func (c *Client) CreateRule(ctx context.Context, zoneID string, nr routing.NewRule) (*routing.Rule, error) {
	const op = "create_rule"

	req := rule{
		Name:     nr.Name,
		Priority: nr.Priority,
		Matchers: []matcher{{Type: string(routing.MatcherLiteral), Field: "to", Value: nr.Matcher}},
		Actions:  []action{{Type: string(routing.ActionForward), Value: []string{nr.ForwardTo}}},
	}

	env, err := c.do(ctx, op, http.MethodPost, rulesPath(zoneID), nil, &req)
	if err != nil {
		return nil, err
	}

	created := rule{}
	if err := decodeResult(op, env, &created); err != nil {
		return nil, err
	}

	r := toRoutingRule(&created)
	return &r, nil
}

func (c *Client) DeleteRule(ctx context.Context, zoneID string, ruleID string) error {
	path := fmt.Sprintf("%v/%v", rulesPath(zoneID), url.PathEscape(ruleID))
	_, err := c.do(ctx, "delete_rule", http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) ListDestinationAddresses(ctx context.Context, accountID string) ([]routing.DestinationAddress, error) {
	path := fmt.Sprintf("/accounts/%v/email/routing/addresses", url.PathEscape(accountID))
	addrs, err := listAll[address](ctx, c, "list_destination_addresses", path)
	if err != nil {
		return nil, err
	}

	out := make([]routing.DestinationAddress, 0, len(addrs))
	for _, a := range addrs {
		da := routing.DestinationAddress{ID: a.ID, Email: a.Email, Tag: a.Tag, Verified: timeOrZero(a.Verified)}
		if da.ID == "" {
			da.ID = a.Tag
		}
		out = append(out, da)
	}
	return out, nil
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
