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
	"errors"
	"fmt"
)

var (
	ErrRemoteRejected    = errors.New("remote rejected request")
	ErrRemoteUnavailable = errors.New("remote unavailable")
)

// RemoteError is a failure reported by, or while talking to, the remote service.
// Kind is one of ErrRemoteRejected or ErrRemoteUnavailable.
type RemoteError struct {
	Kind   error
	Op     string
	Status int
	Reason string
	Err    error
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%v: %v", e.Op, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (http %v)", e.Status)
	}

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == e.Kind
}

func NewRejectedError(op string, status int, reason string) *RemoteError {
	return &RemoteError{Kind: ErrRemoteRejected, Op: op, Status: status, Reason: reason}
}

func NewUnavailableError(op string, status int, err error) *RemoteError {
	return &RemoteError{Kind: ErrRemoteUnavailable, Op: op, Status: status, Err: err}
}
