package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/InMan-Labs/inman-website/internal/roi"
	"github.com/InMan-Labs/inman-website/pkg/logger"
)

// newRootCommand builds a fresh command tree so tests can run commands in
// isolation.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "inman-website",
		Short: "InMan marketing website",
		Long: `Serves the InMan marketing site: landing page with the ROI calculator,
product walkthrough and demo request form.

Run without a subcommand to start the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := newServeCommand()
	root.AddCommand(serve, newEstimateCommand())

	root.Flags().AddFlagSet(serve.Flags())
	root.RunE = serve.RunE
	return root
}

func newServeCommand() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), logger.NewLogger(), envFile)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	return cmd
}

func newEstimateCommand() *cobra.Command {
	var (
		in     = roi.DefaultInputs()
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print the ROI estimate for a set of inputs",
		Long: `Computes yearly time and cost saved by halving MTTR on routine incidents.

Inputs are snapped into the calculator's ranges before computing, exactly
as the website does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			est := roi.NewEstimate(in)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(est)
			}

			fmt.Fprintf(out, "Incidents per month: %s\n", roi.FormatGrouped(est.Inputs.IncidentsPerMonth))
			fmt.Fprintf(out, "MTTR:                %s hrs\n", roi.FormatGrouped(est.Inputs.MTTRHours))
			fmt.Fprintf(out, "Cost per hour:       $%s\n", roi.FormatGrouped(est.Inputs.CostPerHour))
			fmt.Fprintf(out, "Time saved:          %s hours/year (%s)\n", est.TimeSavedDisplay, roi.FormatGrouped(est.Savings.TimeSavedHoursPerYear))
			fmt.Fprintf(out, "Cost saved:          %s/year ($%s)\n", est.CostSavedDisplay, roi.FormatGrouped(est.Savings.CostSavedPerYear))
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.IncidentsPerMonth, "incidents", in.IncidentsPerMonth, "routine incidents per month")
	cmd.Flags().Float64Var(&in.MTTRHours, "mttr", in.MTTRHours, "current mean time to resolve, in hours")
	cmd.Flags().Float64Var(&in.CostPerHour, "cost", in.CostPerHour, "cost per incident per hour, in dollars")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the estimate as JSON")
	return cmd
}
