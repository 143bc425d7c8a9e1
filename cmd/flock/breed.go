package main

import (
	"github.com/spf13/cobra"

	"sheep-breeding-web/internal/domain/breeding"
)

func newBreedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breed",
		Short: "Breeding predictions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "predict <sheep1> <sheep2>",
		Short: "Predict the phenotype distribution of a child",
		Long: `Pide al backend la distribución de fenotipo de una cría de (sheep1, sheep2).
El orden del par se respeta tal cual.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.breedingService()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			pv, err := svc.Predict(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			renderer(cmd).Prediction(pv)
			return nil
		},
	})

	return cmd
}

func newRelationshipsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "relationships",
		Short: "List registered breeding pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.breedingService()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			items, err := svc.Relationships(ctx)
			if err != nil {
				return err
			}
			renderer(cmd).Relationships(items)
			return nil
		},
	}
}

func (a *app) breedingService() (*breeding.Service, error) {
	c, err := a.backend()
	if err != nil {
		return nil, err
	}
	return breeding.NewService(c), nil
}
