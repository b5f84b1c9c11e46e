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

func classify(args *CreateArgs) inputShape {
	switch {
	case args.Matcher == "" && args.ForwardTo != "":
		return shapeInvalid
	case args.Matcher == "":
		return shapeGenerated
	case strings.Contains(args.Matcher, "@"):
		return shapeAddress
	default:
		return shapeLocalPart
	}
}

// ResolveCreate turns create input into a fully-specified rule on domain.
// Addresses are not validated beyond the presence of "@"; the remote
// service rejects anything malformed, including a foreign domain.
func ResolveCreate(args CreateArgs, domain string, defaultDestination string, gen Generator) (routing.NewRule, error) {
	rule := routing.NewRule{
		Name:     args.Name,
		Priority: args.Priority,
	}

	switch classify(&args) {
	case shapeInvalid:
		return routing.NewRule{}, &ArgumentError{ForwardTo: args.ForwardTo}
	case shapeGenerated:
		rule.Matcher = gen.LocalPart() + "@" + domain
	case shapeAddress:
		rule.Matcher = args.Matcher
	case shapeLocalPart:
		rule.Matcher = args.Matcher + "@" + domain
	}

	rule.ForwardTo = args.ForwardTo
	if rule.ForwardTo == "" {
		rule.ForwardTo = defaultDestination
	}

	if rule.ForwardTo == "" {
		return routing.NewRule{}, &ArgumentError{Reason: "no forward target given and no default destination configured"}
	}

	return rule, nil
}
