package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doi-resolver/pkg/doi"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <doi>...",
	Short: "Resolve DOIs to their publisher URLs",
	Long: `Resolve follows the doi.org redirect chain for each DOI and prints the
final publisher URL. Individual failures are reported and do not stop the
remaining DOIs from being resolved.`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more DOIs")
	}

	cfg := clientConfig()
	failed := 0
	for _, value := range args {
		d, err := doi.NewWithConfig(value, cfg)
		if err != nil {
			return err
		}
		logger.Debug("resolving", "doi", value)
		resolved, err := d.Resolve()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s (%v)\n", value, err)
			failed++
			continue
		}
		fmt.Fprintf(os.Stdout, "%s\t%s\n", value, resolved)
	}

	if failed > 0 {
		return fmt.Errorf("%d DOI(s) failed to resolve", failed)
	}
	return nil
}
