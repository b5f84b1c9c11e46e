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

package setup

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vs49688/mailroute/cmd/config"
)

func RegisterCommand(app *cli.App, cfg *config.CliConfig) *cli.App {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "setup",
		Usage:     "Verify and save account credentials",
		ArgsUsage: "<email> <api-token> [api-key]",
		Description: `Credentials are stored unencrypted in the credential file,
replacing any previous contents. Protect it accordingly.`,
		Action: func(context *cli.Context) error { return setup(context, cfg) },
	})
	return app
}

func setup(ctx *cli.Context, cfg *config.CliConfig) error {
	if ctx.NArg() < 2 || ctx.NArg() > 3 {
		return fmt.Errorf("expected <email> <api-token> [api-key], got %v arguments", ctx.NArg())
	}

	creds := &config.Credentials{
		Email:    ctx.Args().Get(0),
		APIToken: ctx.Args().Get(1),
		APIKey:   ctx.Args().Get(2),
	}

	tok, err := cfg.NewService(creds).VerifyToken(ctx.Context)
	if err != nil {
		return fmt.Errorf("verifying token: %w", err)
	}

	if tok.Status != "active" {
		return fmt.Errorf("token %v is not active: %v", tok.ID, tok.Status)
	}

	expires := "never"
	if !tok.ExpiresOn.IsZero() {
		expires = tok.ExpiresOn.String()
	}

	cfg.Logger.WithFields(log.Fields{
		"token_id": tok.ID,
		"status":   tok.Status,
		"expires":  expires,
	}).Info("token_verified")

	if err := config.WriteCredentials(cfg.ConfigPath, creds); err != nil {
		return err
	}

	cfg.Logger.WithField("path", cfg.ConfigPath).Warn("credentials_saved_unencrypted")
	_, _ = fmt.Fprintf(ctx.App.Writer, "Config saved at %v\n", cfg.ConfigPath)
	return nil
}
