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
	"errors"
	"fmt"
	"strings"

	"github.com/vs49688/mailroute/routing"
)

var (
	ErrNoZonesAvailable   = errors.New("no zones available")
	ErrAmbiguousArguments = errors.New("ambiguous arguments")
	ErrNoMatchingRule     = errors.New("no matching rule")
	ErrAmbiguousMatch     = errors.New("ambiguous match")
)

// CreateArgs is the raw input of a create invocation. Empty strings are absent.
type CreateArgs struct {
	Matcher   string
	ForwardTo string
	Name      string
	Priority  *int
}

type inputShape int

const (
	shapeInvalid inputShape = iota
	shapeGenerated
	shapeLocalPart
	shapeAddress
)

func (s inputShape) String() string {
	switch s {
	case shapeInvalid:
		return "invalid"
	case shapeGenerated:
		return "generated"
	case shapeLocalPart:
		return "local_part"
	case shapeAddress:
		return "address"
	default:
		panic("invalid_shape")
	}
}

type ArgumentError struct {
	ForwardTo string
	Reason    string
}

func (e *ArgumentError) Error() string {
	if e.ForwardTo != "" {
		return fmt.Sprintf("%v: forward target %q given without a matcher", ErrAmbiguousArguments, e.ForwardTo)
	}
	return fmt.Sprintf("%v: %v", ErrAmbiguousArguments, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrAmbiguousArguments
}

// NoMatchError carries every rule that was searched.
type NoMatchError struct {
	Query string
	Rules []routing.Rule
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%v: nothing matches %q", ErrNoMatchingRule, e.Query)
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatchingRule
}

type AmbiguousMatchError struct {
	Query      string
	Candidates []routing.Rule
}

func (e *AmbiguousMatchError) Error() string {
	ids := make([]string, 0, len(e.Candidates))
	for _, r := range e.Candidates {
		ids = append(ids, r.ID)
	}
	return fmt.Sprintf("%v: %q matches %v rules (%v)", ErrAmbiguousMatch, e.Query, len(e.Candidates), strings.Join(ids, ", "))
}

func (e *AmbiguousMatchError) Is(target error) bool {
	return target == ErrAmbiguousMatch
}
