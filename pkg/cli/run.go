package cli

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/cli/config"
	"github.com/secmon-lab/blockrelay/pkg/domain/model"
	"github.com/secmon-lab/blockrelay/pkg/domain/types"
	"github.com/secmon-lab/blockrelay/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		browserCfg config.Browser
		panelCfg   config.Panel
		action     string
		guid       string
		reason     string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "action",
				Aliases:     []string{"a"},
				Usage:       "Blocklist action (add, remove)",
				Category:    "Action",
				Required:    true,
				Destination: &action,
			},
			&cli.StringFlag{
				Name:        "guid",
				Aliases:     []string{"g"},
				Usage:       "Subject identifier",
				Category:    "Action",
				Required:    true,
				Destination: &guid,
			},
			&cli.StringFlag{
				Name:        "reason",
				Aliases:     []string{"r"},
				Usage:       "Reason recorded with add",
				Category:    "Action",
				Destination: &reason,
			},
		},
		browserCfg.Flags(),
		panelCfg.Flags(),
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Perform one blocklist action and print the outcome as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			req := model.ActionRequest{
				Action:    types.Action(action),
				SubjectID: types.SubjectID(guid),
				Reason:    reason,
			}.Normalize()
			if err := req.Validate(); err != nil {
				return err
			}

			blocklistCfg, err := panelCfg.Configure()
			if err != nil {
				return err
			}

			connector, err := browserCfg.Configure()
			if err != nil {
				return err
			}
			defer closeConnector(ctx, connector)

			outcome, err := usecase.NewBlocklist(connector, blocklistCfg).Execute(ctx, req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")
			if err := enc.Encode(outcome); err != nil {
				return goerr.Wrap(err, "failed to write outcome")
			}

			if !outcome.OK() {
				return goerr.New("panel did not confirm the action",
					goerr.V("final_url", outcome.FinalURL()),
					goerr.V("error_indicator", outcome.ErrorIndicatorFound()))
			}
			return nil
		},
	}
}
