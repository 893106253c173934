package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep-delinquency",
	Short: "Evaluate every customer with outstanding installments",
	Long: `Runs the delinquency check for every customer account that still owes money.
Accounts with overdue installments are blocked and their overdue total is refreshed.

Intended to run once a day from a scheduler.`,
	Example: `  portal-pedidos sweep-delinquency`,
	RunE:    runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	app, err := newApplication(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	res, err := app.delinquency.Sweep(cmd.Context())
	if err != nil {
		app.log.Error("[delinquency][sweep] failed", zap.Error(err))
		return err
	}
	app.log.Info("[delinquency][sweep] finished",
		zap.Int("evaluated", res.Evaluated),
		zap.Int("blocked", res.Blocked),
		zap.Int("failed", res.Failed),
	)
	return nil
}
