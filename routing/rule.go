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
	"fmt"
	"strings"
)

// Addresses returns the values of all literal matchers.
func (r *Rule) Addresses() []string {
	addrs := make([]string, 0, len(r.Matchers))
	for _, m := range r.Matchers {
		if m.Type == MatcherLiteral {
			addrs = append(addrs, m.Value)
		}
	}
	return addrs
}

// Address returns the first literal matcher value, or "" for catch-all rules.
func (r *Rule) Address() string {
	addrs := r.Addresses()
	if len(addrs) == 0 {
		return ""
	}
	return addrs[0]
}

func (r *Rule) ForwardTo() []string {
	var to []string
	for _, a := range r.Actions {
		if a.Type == ActionForward {
			to = append(to, a.Value...)
		}
	}
	return to
}

func (m Matcher) String() string {
	if m.Type == MatcherAll {
		return "* (catch-all)"
	}
	return m.Value
}

func (a Action) String() string {
	switch a.Type {
	case ActionDrop:
		return "Drop"
	case ActionForward:
		return fmt.Sprintf("Forward to %v", strings.Join(a.Value, ", "))
	case ActionWorker:
		return fmt.Sprintf("Worker (%v)", strings.Join(a.Value, ", "))
	default:
		return string(a.Type)
	}
}

func joinStringers[T fmt.Stringer](items []T) string {
	s := make([]string, 0, len(items))
	for _, item := range items {
		s = append(s, item.String())
	}
	return strings.Join(s, ", ")
}

func (r Rule) String() string {
	sb := strings.Builder{}
	sb.WriteString(joinStringers(r.Matchers))
	sb.WriteString(" -> ")
	sb.WriteString(joinStringers(r.Actions))
	fmt.Fprintf(&sb, " (ID: %v", r.ID)

	if r.Name != "" {
		fmt.Fprintf(&sb, ", Name: %v", r.Name)
	}

	if !r.Enabled {
		sb.WriteString(", Disabled")
	}

	if r.Priority != nil && *r.Priority != 0 {
		fmt.Fprintf(&sb, ", Priority: %v", *r.Priority)
	}

	sb.WriteString(")")
	return sb.String()
}

func (z Zone) String() string {
	return fmt.Sprintf("%v (id = %v)", z.Name, z.ID)
}

func (a DestinationAddress) String() string {
	s := a.Email
	if a.ID != "" {
		s += fmt.Sprintf(" (id = %v)", a.ID)
	}

	if a.Verified.IsZero() {
		s += " [unverified]"
	}
	return s
}

func (s Settings) String() string {
	enabled := "disabled"
	if s.Enabled {
		enabled = "enabled"
	}
	return fmt.Sprintf("%v: %v, status %v", s.Name, enabled, s.Status)
}
