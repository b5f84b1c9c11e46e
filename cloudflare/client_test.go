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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vs49688/mailroute/internal"
	"github.com/vs49688/mailroute/routing"
)

func buildTestClient(t *testing.T) (*Client, *internal.FakeAPI) {
	api := internal.NewFakeAPI("token")
	api.AddZone("z1", "mail.com", "a1")
	api.AddAddress("a1", "me@mail.com", true)
	api.AddAddress("a1", "pending@mail.com", false)

	url := internal.BuildTestAPIServer(t, api)
	return NewClient(&Config{BaseURL: url, APIToken: "token"}), api
}

func intPtr(i int) *int { return &i }

func TestClient_VerifyToken(t *testing.T) {
	c, _ := buildTestClient(t)

	tok, err := c.VerifyToken(context.Background())
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, "active", tok.Status)
	assert.True(t, tok.ExpiresOn.IsZero())
}

func TestClient_ListZones(t *testing.T) {
	c, api := buildTestClient(t)
	api.AddZone("z2", "other.com", "a1")
	api.AddZone("z3", "third.com", "a2")
	api.PageSize = 2

	zones, err := c.ListZones(context.Background())
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	assert.Equal(t, []routing.Zone{
		{ID: "z1", Name: "mail.com", AccountID: "a1", AccountName: "a1's account"},
		{ID: "z2", Name: "other.com", AccountID: "a1", AccountName: "a1's account"},
		{ID: "z3", Name: "third.com", AccountID: "a2", AccountName: "a2's account"},
	}, zones)
	assert.Equal(t, []string{"GET /zones", "GET /zones"}, api.RequestLog())
}

func TestClient_Rules(t *testing.T) {
	c, api := buildTestClient(t)
	ctx := context.Background()

	created, err := c.CreateRule(ctx, "z1", routing.NewRule{
		Matcher:   "test@mail.com",
		ForwardTo: "me@mail.com",
		Name:      "test rule",
		Priority:  intPtr(7),
	})
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "test@mail.com", created.Address())
	assert.Equal(t, []string{"me@mail.com"}, created.ForwardTo())
	assert.Equal(t, "test rule", created.Name)
	assert.Equal(t, intPtr(7), created.Priority)
	assert.True(t, created.Enabled)

	stored := api.ZoneRules("z1")
	if assert.Len(t, stored, 1) {
		assert.Equal(t, []internal.APIMatcher{{Type: "literal", Field: "to", Value: "test@mail.com"}}, stored[0].Matchers)
		assert.Equal(t, []internal.APIAction{{Type: "forward", Value: []string{"me@mail.com"}}}, stored[0].Actions)
	}

	rules, err := c.ListRules(ctx, "z1")
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, []routing.Rule{*created}, rules)

	assert.NoError(t, c.DeleteRule(ctx, "z1", created.ID))
	assert.Empty(t, api.ZoneRules("z1"))

	t.Run("delete_missing", func(t *testing.T) {
		err := c.DeleteRule(ctx, "z1", created.ID)
		assert.ErrorIs(t, err, routing.ErrRemoteRejected)
	})
}

func TestClient_CreateRuleRejected(t *testing.T) {
	c, api := buildTestClient(t)
	ctx := context.Background()
	api.AddRule("z1", internal.APIRule{
		Enabled:  true,
		Matchers: []internal.APIMatcher{{Type: "literal", Field: "to", Value: "dupe@mail.com"}},
		Actions:  []internal.APIAction{{Type: "forward", Value: []string{"me@mail.com"}}},
	})

	tests := []struct {
		name   string
		rule   routing.NewRule
		status int
		reason string
	}{
		{"foreign_domain", routing.NewRule{Matcher: "x@other.org", ForwardTo: "me@mail.com"}, http.StatusBadRequest, "2020: Invalid matcher x@other.org for zone mail.com"},
		{"duplicate", routing.NewRule{Matcher: "dupe@mail.com", ForwardTo: "me@mail.com"}, http.StatusConflict, "2023: Duplicated rule matcher"},
		{"unverified", routing.NewRule{Matcher: "x@mail.com", ForwardTo: "pending@mail.com"}, http.StatusBadRequest, "2021: Destination address pending@mail.com not verified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CreateRule(ctx, "z1", tt.rule)
			assert.ErrorIs(t, err, routing.ErrRemoteRejected)

			var remote *routing.RemoteError
			if assert.True(t, errors.As(err, &remote)) {
				assert.Equal(t, "create_rule", remote.Op)
				assert.Equal(t, tt.status, remote.Status)
				assert.Equal(t, tt.reason, remote.Reason)
			}
		})
	}
}

func TestClient_ListDestinationAddresses(t *testing.T) {
	c, _ := buildTestClient(t)

	addrs, err := c.ListDestinationAddresses(context.Background(), "a1")
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	if assert.Len(t, addrs, 2) {
		assert.Equal(t, "me@mail.com", addrs[0].Email)
		assert.False(t, addrs[0].Verified.IsZero())
		assert.NotEmpty(t, addrs[0].ID)
		assert.Equal(t, "pending@mail.com", addrs[1].Email)
		assert.True(t, addrs[1].Verified.IsZero())
	}

	none, err := c.ListDestinationAddresses(context.Background(), "unknown")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestClient_GetRoutingSettings(t *testing.T) {
	c, _ := buildTestClient(t)

	s, err := c.GetRoutingSettings(context.Background(), "z1")
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, &routing.Settings{ID: "z1", Name: "mail.com", Enabled: true, Status: "ready"}, s)
}

func TestClient_Errors(t *testing.T) {
	t.Run("bad_token", func(t *testing.T) {
		api := internal.NewFakeAPI("token")
		c := NewClient(&Config{BaseURL: internal.BuildTestAPIServer(t, api), APIToken: "wrong"})

		_, err := c.ListZones(context.Background())
		assert.ErrorIs(t, err, routing.ErrRemoteUnavailable)
		assert.Contains(t, err.Error(), "Authentication error")
	})

	t.Run("connection_refused", func(t *testing.T) {
		s := httptest.NewServer(http.NotFoundHandler())
		url := s.URL
		s.Close()

		c := NewClient(&Config{BaseURL: url, APIToken: "token"})
		_, err := c.ListZones(context.Background())
		assert.ErrorIs(t, err, routing.ErrRemoteUnavailable)
	})

	t.Run("server_error", func(t *testing.T) {
		s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		t.Cleanup(s.Close)

		c := NewClient(&Config{BaseURL: s.URL, APIToken: "token"})
		_, err := c.ListRules(context.Background(), "z1")
		assert.ErrorIs(t, err, routing.ErrRemoteUnavailable)
		assert.Contains(t, err.Error(), "Bad Gateway")
	})

	t.Run("garbage", func(t *testing.T) {
		s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		t.Cleanup(s.Close)

		c := NewClient(&Config{BaseURL: s.URL, APIToken: "token"})
		_, err := c.ListZones(context.Background())
		assert.ErrorIs(t, err, routing.ErrRemoteUnavailable)
	})

	t.Run("unsuccessful_ok", func(t *testing.T) {
		s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"errors":[],"messages":[],"result":null}`))
		}))
		t.Cleanup(s.Close)

		c := NewClient(&Config{BaseURL: s.URL, APIToken: "token"})
		err := c.DeleteRule(context.Background(), "z1", "r1")
		assert.ErrorIs(t, err, routing.ErrRemoteRejected)
	})
}

func TestClient_AuthHeaders(t *testing.T) {
	var got http.Header
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"success":true,"errors":[],"messages":[],"result":[]}`))
	}))
	t.Cleanup(s.Close)

	t.Run("token_and_key", func(t *testing.T) {
		c := NewClient(&Config{BaseURL: s.URL, Email: "me@mail.com", APIToken: "token", APIKey: "key"})
		_, err := c.ListZones(context.Background())
		assert.NoError(t, err)

		assert.Equal(t, "Bearer token", got.Get("Authorization"))
		assert.Equal(t, "me@mail.com", got.Get("X-Auth-Email"))
		assert.Equal(t, "key", got.Get("X-Auth-Key"))
	})

	t.Run("token_only", func(t *testing.T) {
		c := NewClient(&Config{BaseURL: s.URL, Email: "me@mail.com", APIToken: "token"})
		_, err := c.ListZones(context.Background())
		assert.NoError(t, err)

		assert.Equal(t, "Bearer token", got.Get("Authorization"))
		assert.Empty(t, got.Get("X-Auth-Email"))
		assert.Empty(t, got.Get("X-Auth-Key"))
	})

	t.Run("key_only", func(t *testing.T) {
		c := NewClient(&Config{BaseURL: s.URL, Email: "me@mail.com", APIKey: "key"})
		_, err := c.ListZones(context.Background())
		assert.NoError(t, err)

		assert.Empty(t, got.Get("Authorization"))
		assert.Equal(t, "key", got.Get("X-Auth-Key"))
	})
}
