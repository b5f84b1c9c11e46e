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

package remove

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/vs49688/mailroute/cmd/config"
	"github.com/vs49688/mailroute/resolver"
	"github.com/vs49688/mailroute/routing"
)

func RegisterCommand(app *cli.App, cfg *config.CliConfig) *cli.App {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a forwarding rule",
		ArgsUsage: "<query>",
		Description: `query is matched as a substring of each rule's id and matcher
address. Exactly one rule must match.`,
		Action: func(context *cli.Context) error { return deleteRule(context, cfg) },
	})
	return app
}

func printRules(w io.Writer, rules []routing.Rule) {
	for _, r := range rules {
		_, _ = fmt.Fprintf(w, "  - %v\n", r)
	}
}

func deleteRule(ctx *cli.Context, cfg *config.CliConfig) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %v", ctx.NArg())
	}

	f, err := cfg.NewForwarder()
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	query := ctx.Args().First()

	rule, err := f.Delete(ctx.Context, query)

	var ambiguous *resolver.AmbiguousMatchError
	var noMatch *resolver.NoMatchError
	switch {
	case errors.As(err, &ambiguous):
		_, _ = fmt.Fprintf(w, "Multiple rules match %q:\n", query)
		printRules(w, ambiguous.Candidates)
		_, _ = fmt.Fprintln(w, "Please specify a unique identifier.")
		return err
	case errors.As(err, &noMatch):
		_, _ = fmt.Fprintf(w, "No rules match %q.\n", query)
		if len(noMatch.Rules) > 0 {
			_, _ = fmt.Fprintln(w, "Available rules:")
			printRules(w, noMatch.Rules)
		}
		return err
	case err != nil:
		return err
	}

	_, _ = fmt.Fprintf(w, "Rule deleted: %v\n", rule)
	return nil
}
