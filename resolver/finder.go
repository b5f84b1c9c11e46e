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

package resolver

import (
	"strings"

	"github.com/vs49688/mailroute/routing"
)

func ruleMatches(query string, r *routing.Rule) bool {
	if strings.Contains(r.ID, query) {
		return true
	}

	// Catch-all matchers have no address and only match by ID.
	for _, addr := range r.Addresses() {
		if strings.Contains(addr, query) {
			return true
		}
	}
	return false
}

// FindRule resolves query to exactly one rule by case-sensitive substring
// match against the rule ID or any of its matcher addresses.
func FindRule(query string, rules []routing.Rule) (routing.Rule, error) {
	// "" is a substring of everything.
	if query == "" {
		return routing.Rule{}, &ArgumentError{Reason: "empty rule query"}
	}

	var matched []routing.Rule
	for i := range rules {
		if ruleMatches(query, &rules[i]) {
			matched = append(matched, rules[i])
		}
	}

	switch len(matched) {
	case 0:
		return routing.Rule{}, &NoMatchError{Query: query, Rules: rules}
	case 1:
		return matched[0], nil
	default:
		return routing.Rule{}, &AmbiguousMatchError{Query: query, Candidates: matched}
	}
}
