package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/coursecatalog/cmd/app/commands"
	"github.com/allisson/coursecatalog/internal/app"
	"github.com/allisson/coursecatalog/internal/config"
	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
)

func getContentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "check-credentials",
			Usage: "Validate content API credentials the way the settings page does",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "space",
					Aliases: []string{"s"},
					Usage:   "Space ID",
				},
				&cli.StringFlag{
					Name:  "cda",
					Usage: "Content Delivery API access token",
				},
				&cli.StringFlag{
					Name:  "cpa",
					Usage: "Content Preview API access token",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				settingsUseCase, err := container.SettingsUseCase()
				if err != nil {
					return err
				}

				return commands.RunCheckCredentials(
					ctx,
					settingsUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					settingsDomain.SubmitInput{
						Space: cmd.String("space"),
						CDA:   cmd.String("cda"),
						CPA:   cmd.String("cpa"),
					},
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "render-markdown",
			Usage: "Render markdown through the content sanitizer",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"i"},
					Usage:   "Markdown file to render (reads stdin when omitted)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunRenderMarkdown(commands.DefaultIO(), cmd.String("file"))
			},
		},
	}
}
