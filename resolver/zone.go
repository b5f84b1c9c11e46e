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
	"fmt"

	"github.com/vs49688/mailroute/routing"
)

// SelectZone picks the active zone. With no override this is the first zone,
// in the order the remote service returned them. An override must equal a
// zone's ID or name exactly.
func SelectZone(zones []routing.Zone, override string) (routing.Zone, error) {
	if len(zones) == 0 {
		return routing.Zone{}, ErrNoZonesAvailable
	}

	if override == "" {
		return zones[0], nil
	}

	for _, z := range zones {
		if z.ID == override || z.Name == override {
			return z, nil
		}
	}

	return routing.Zone{}, fmt.Errorf("%w: no zone named %q", ErrNoZonesAvailable, override)
}
