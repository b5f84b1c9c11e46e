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
	log "github.com/sirupsen/logrus"

	"github.com/vs49688/mailroute/resolver"
	"github.com/vs49688/mailroute/routing"
)

type Config struct {
	Service   routing.Service
	Generator resolver.Generator

	// DefaultDestination receives mail when create is given no forward target.
	DefaultDestination string

	// Zone selects the active zone by ID or name. Empty means the first zone.
	Zone string

	Logger *log.Entry
}

type Forwarder struct {
	service            routing.Service
	generator          resolver.Generator
	defaultDestination string
	zone               string
	logger             *log.Entry
}
