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

package create

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vs49688/mailroute/cmd/config"
	"github.com/vs49688/mailroute/resolver"
)

func RegisterCommand(app *cli.App, cfg *config.CliConfig) *cli.App {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "create",
		Usage:     "Create a forwarding rule",
		ArgsUsage: "[matcher] [forward-to]",
		Description: `matcher may be a full address or just the local part, in which
case the zone's domain is appended. Without a matcher, a random local
part is generated. forward-to defaults to the account email and must be
a verified destination address.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "rule name",
			},
			&cli.IntFlag{
				Name:  "priority",
				Usage: "rule priority, lower is evaluated first",
			},
		},
		Action: func(context *cli.Context) error { return create(context, cfg) },
	})
	return app
}

func create(ctx *cli.Context, cfg *config.CliConfig) error {
	if ctx.NArg() > 2 {
		return fmt.Errorf("expected at most 2 arguments, got %v", ctx.NArg())
	}

	args := resolver.CreateArgs{
		Matcher:   ctx.Args().Get(0),
		ForwardTo: ctx.Args().Get(1),
		Name:      ctx.String("name"),
	}

	if ctx.IsSet("priority") {
		priority := ctx.Int("priority")
		args.Priority = &priority
	}

	f, err := cfg.NewForwarder()
	if err != nil {
		return err
	}

	rule, err := f.Create(ctx.Context, args)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ctx.App.Writer, "Rule created: %v\n", rule)
	return nil
}
