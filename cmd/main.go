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

package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vs49688/mailroute/cmd/config"
	"github.com/vs49688/mailroute/cmd/create"
	"github.com/vs49688/mailroute/cmd/list"
	"github.com/vs49688/mailroute/cmd/remove"
	"github.com/vs49688/mailroute/cmd/setup"
)

func NewApp() *cli.App {
	cfg := config.DefaultConfig()

	app := &cli.App{
		Name:  "mailroute",
		Usage: "manage email forwarding rules",
		Description: `MailRoute creates and deletes email forwarding rules on a
zone's email routing service. Run "setup" first to save credentials.
`,
		Flags: cfg.Parameters(),
		Before: func(*cli.Context) error {
			cfg.ConfigureLogging()
			return nil
		},
	}

	setup.RegisterCommand(app, &cfg)
	list.RegisterCommand(app, &cfg)
	create.RegisterCommand(app, &cfg)
	remove.RegisterCommand(app, &cfg)

	return app
}

func Main() {
	if err := NewApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
