// internal/cli/archs.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/vcenv/pkg/arch"
	"github.com/arc-language/vcenv/pkg/platform"
)

var archsCmd = &cobra.Command{
	Use:   "archs",
	Short: "List host/target pairings",
	Long:  `List the architecture pairings vcvarsall accepts and mark the default for this machine.`,
	Args:  cobra.NoArgs,
	RunE:  runArchs,
}

func runArchs(cmd *cobra.Command, args []string) error {
	plat := platform.Detect()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Platform: %s/%s\n\n", plat.OS, plat.Arch)
	fmt.Fprintf(out, "Pairings:\n")
	for _, a := range arch.All() {
		tok, err := a.Token()
		if err != nil {
			return err
		}
		ht, err := a.HostTarget()
		if err != nil {
			return err
		}
		marker := " "
		if a == plat.Default {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %-12s host=%-4s target=%s\n", marker, tok, ht.Host, ht.Target)
	}
	fmt.Fprintf(out, "\n* = default pairing\n")

	return nil
}
