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

package list

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/vs49688/mailroute/cmd/config"
)

func RegisterCommand(app *cli.App, cfg *config.CliConfig) *cli.App {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:    "list",
			Aliases: []string{"ls"},
			Usage:   "List forwarding rules of the active zone",
			Action:  func(context *cli.Context) error { return listRules(context, cfg) },
		},
		&cli.Command{
			Name:   "zones",
			Usage:  "List zones available to the account",
			Action: func(context *cli.Context) error { return listZones(context, cfg) },
		},
		&cli.Command{
			Name:   "addresses",
			Usage:  "List destination addresses of the active zone's account",
			Action: func(context *cli.Context) error { return listAddresses(context, cfg) },
		},
		&cli.Command{
			Name:   "status",
			Usage:  "Show email routing settings of the active zone",
			Action: func(context *cli.Context) error { return status(context, cfg) },
		},
	)
	return app
}

func printList[T fmt.Stringer](w io.Writer, title string, empty string, items []T) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, empty)
		return
	}

	_, _ = fmt.Fprintln(w, title)
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "  - %v\n", item)
	}
}

func listRules(ctx *cli.Context, cfg *config.CliConfig) error {
	f, err := cfg.NewForwarder()
	if err != nil {
		return err
	}

	zone, rules, err := f.Rules(ctx.Context)
	if err != nil {
		return err
	}

	printList(ctx.App.Writer, fmt.Sprintf("Rules for %v:", zone.Name), "No rules found.", rules)
	return nil
}

func listZones(ctx *cli.Context, cfg *config.CliConfig) error {
	f, err := cfg.NewForwarder()
	if err != nil {
		return err
	}

	zones, err := f.Zones(ctx.Context)
	if err != nil {
		return err
	}

	printList(ctx.App.Writer, "Zones:", "No zones found.", zones)
	return nil
}

func listAddresses(ctx *cli.Context, cfg *config.CliConfig) error {
	f, err := cfg.NewForwarder()
	if err != nil {
		return err
	}

	addrs, err := f.Addresses(ctx.Context)
	if err != nil {
		return err
	}

	printList(ctx.App.Writer, "Addresses:", "No addresses found.", addrs)
	return nil
}

func status(ctx *cli.Context, cfg *config.CliConfig) error {
	f, err := cfg.NewForwarder()
	if err != nil {
		return err
	}

	settings, err := f.Settings(ctx.Context)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(ctx.App.Writer, settings)
	return nil
}
