package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/99minutos/eld-logs/internal/core/service"
)

func newBoundsCommand() *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "bounds --file route.yaml",
		Short: "Print the bounding box of route points.",
		Long:  "bounds reads \"points\" and/or \"legs\" of {lat, lng} from a YAML or JSON file and prints the enclosing box.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(fileFlag, cmd.InOrStdin())
			if err != nil {
				return err
			}
			var in legsFile
			if err := decodeFile(data, &in); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			box, ok := service.NewMapService(commandLogger(cmd.ErrOrStderr())).Bounds(in.all()...)
			if !ok {
				fmt.Fprintln(out, "no points")
				return nil
			}

			fmt.Fprintf(out, "southwest %g,%g\n", box.Southwest.Lat, box.Southwest.Lng)
			fmt.Fprintf(out, "northeast %g,%g\n", box.Northeast.Lat, box.Northeast.Lng)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "-", "Points file (YAML or JSON); \"-\" reads stdin")

	return cmd
}
