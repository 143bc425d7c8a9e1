package main

import (
	"github.com/spf13/cobra"

	"sheep-breeding-web/internal/domain/sheep"
)

func newSheepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheep",
		Short: "Query sheep registered in the backend",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all sheep (id and name)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.sheepService()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			items, err := svc.List(ctx)
			if err != nil {
				return err
			}
			renderer(cmd).SheepList(items)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show genotypes and distributions of a sheep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := sheep.ParseID(args[0])
			if err != nil {
				return err
			}
			svc, err := a.sheepService()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			s, err := svc.Get(ctx, id)
			if err != nil {
				return err
			}
			renderer(cmd).Sheep(sheep.FormatSheep(s))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "family <id>",
		Short: "Show parents, children and partners of a sheep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := sheep.ParseID(args[0])
			if err != nil {
				return err
			}
			svc, err := a.sheepService()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			f, err := svc.Family(ctx, id)
			if err != nil {
				return err
			}
			renderer(cmd).Family(f)
			return nil
		},
	})

	return cmd
}

func (a *app) sheepService() (*sheep.Service, error) {
	c, err := a.backend()
	if err != nil {
		return nil, err
	}
	return sheep.NewService(c), nil
}
