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

package forwarding

import (
	"context"
	"errors"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/vs49688/mailroute/resolver"
	"github.com/vs49688/mailroute/routing"
)

func New(cfg *Config) (*Forwarder, error) {
	if cfg.Service == nil {
		return nil, errors.New("no service configured")
	}

	f := &Forwarder{
		service:            cfg.Service,
		generator:          cfg.Generator,
		defaultDestination: cfg.DefaultDestination,
		zone:               cfg.Zone,
		logger:             cfg.Logger,
	}

	if f.generator == nil {
		f.generator = resolver.NewRandomGenerator(nil)
	}

	if f.logger == nil {
		f.logger = log.NewEntry(log.StandardLogger())
	}

	return f, nil
}

func (f *Forwarder) Zones(ctx context.Context) ([]routing.Zone, error) {
	return f.service.ListZones(ctx)
}

// Zone fetches the account's zones and selects the active one.
func (f *Forwarder) Zone(ctx context.Context) (routing.Zone, error) {
	zones, err := f.service.ListZones(ctx)
	if err != nil {
		return routing.Zone{}, err
	}

	zone, err := resolver.SelectZone(zones, f.zone)
	if err != nil {
		return routing.Zone{}, err
	}

	f.logger.WithFields(log.Fields{
		"zone_id":   zone.ID,
		"zone_name": zone.Name,
		"account":   zone.AccountID,
	}).Info("selected_zone")

	return zone, nil
}

// Rules returns the active zone's rules, lowest priority first.
func (f *Forwarder) Rules(ctx context.Context) (routing.Zone, []routing.Rule, error) {
	zone, err := f.Zone(ctx)
	if err != nil {
		return routing.Zone{}, nil, err
	}

	rules, err := f.service.ListRules(ctx, zone.ID)
	if err != nil {
		return zone, nil, err
	}

	priority := func(r *routing.Rule) int {
		if r.Priority == nil {
			return 0
		}
		return *r.Priority
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return priority(&rules[i]) < priority(&rules[j])
	})

	return zone, rules, nil
}

func (f *Forwarder) Addresses(ctx context.Context) ([]routing.DestinationAddress, error) {
	zone, err := f.Zone(ctx)
	if err != nil {
		return nil, err
	}

	return f.service.ListDestinationAddresses(ctx, zone.AccountID)
}

func (f *Forwarder) Settings(ctx context.Context) (*routing.Settings, error) {
	zone, err := f.Zone(ctx)
	if err != nil {
		return nil, err
	}

	return f.service.GetRoutingSettings(ctx, zone.ID)
}

type loggingGenerator struct {
	gen    resolver.Generator
	logger *log.Entry
}

func (g loggingGenerator) LocalPart() string {
	lp := g.gen.LocalPart()
	g.logger.WithField("local_part", lp).Info("generated_local_part")
	return lp
}

func (f *Forwarder) Create(ctx context.Context, args resolver.CreateArgs) (*routing.Rule, error) {
	zone, err := f.Zone(ctx)
	if err != nil {
		return nil, err
	}

	newRule, err := resolver.ResolveCreate(args, zone.Name, f.defaultDestination, loggingGenerator{gen: f.generator, logger: f.logger})
	if err != nil {
		return nil, err
	}

	logger := f.logger.WithFields(log.Fields{
		"zone_id":    zone.ID,
		"matcher":    newRule.Matcher,
		"forward_to": newRule.ForwardTo,
	})

	rule, err := f.service.CreateRule(ctx, zone.ID, newRule)
	if err != nil {
		logger.WithError(err).Debug("rule_create_failed")
		return nil, err
	}

	logger.WithField("rule_id", rule.ID).Info("rule_created")
	return rule, nil
}

// Delete resolves query against the active zone's rules and deletes the
// single match, returning it.
func (f *Forwarder) Delete(ctx context.Context, query string) (*routing.Rule, error) {
	zone, err := f.Zone(ctx)
	if err != nil {
		return nil, err
	}

	rules, err := f.service.ListRules(ctx, zone.ID)
	if err != nil {
		return nil, err
	}

	rule, err := resolver.FindRule(query, rules)
	if err != nil {
		return nil, err
	}

	logger := f.logger.WithFields(log.Fields{
		"zone_id": zone.ID,
		"rule_id": rule.ID,
		"matcher": rule.Address(),
	})

	if err := f.service.DeleteRule(ctx, zone.ID, rule.ID); err != nil {
		logger.WithError(err).Debug("rule_delete_failed")
		return nil, err
	}

	logger.Info("rule_deleted")
	return &rule, nil
}
