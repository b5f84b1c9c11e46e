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

package routing

import (
	"context"
	"time"
)

type MatcherType string

const (
	MatcherLiteral MatcherType = "literal"
	MatcherAll     MatcherType = "all"
)

type ActionType string

const (
	ActionForward ActionType = "forward"
	ActionDrop    ActionType = "drop"
	ActionWorker  ActionType = "worker"
)

// Zone is a managed domain. Name is the domain itself.
type Zone struct {
	ID          string
	Name        string
	AccountID   string
	AccountName string
}

type Matcher struct {
	Type  MatcherType
	Field string
	Value string
}

type Action struct {
	Type  ActionType
	Value []string
}

type Rule struct {
	ID       string
	Name     string
	Enabled  bool
	Priority *int
	Matchers []Matcher
	Actions  []Action
}

// NewRule is a fully-resolved forwarding rule, ready to be submitted.
type NewRule struct {
	Matcher   string
	ForwardTo string
	Name      string
	Priority  *int
}

type DestinationAddress struct {
	ID       string
	Email    string
	Tag      string
	Verified time.Time
}

type Settings struct {
	ID      string
	Name    string
	Enabled bool
	Status  string
}

type TokenStatus struct {
	ID        string
	Status    string
	ExpiresOn time.Time
}

//go:generate mockgen -destination=mocks/mock_routing.go github.com/vs49688/mailroute/routing Service

// Service is the remote mail-routing API.
type Service interface {
	VerifyToken(ctx context.Context) (*TokenStatus, error)

	ListZones(ctx context.Context) ([]Zone, error)

	GetRoutingSettings(ctx context.Context, zoneID string) (*Settings, error)

	ListRules(ctx context.Context, zoneID string) ([]Rule, error)

	CreateRule(ctx context.Context, zoneID string, rule NewRule) (*Rule, error)

	DeleteRule(ctx context.Context, zoneID string, ruleID string) error

	ListDestinationAddresses(ctx context.Context, accountID string) ([]DestinationAddress, error)
}
