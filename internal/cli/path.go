package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/ports"
	"github.com/99minutos/eld-logs/internal/core/service"
	"github.com/99minutos/eld-logs/internal/core/timeline"
)

func newPathCommand(ctx context.Context) *cobra.Command {
	var (
		fileFlag     string
		dateFlag     string
		timezoneFlag string
		widthFlag    float64
		heightFlag   float64
		jsonFlag     bool
	)

	cmd := &cobra.Command{
		Use:   "path --file events.yaml",
		Short: "Print the SVG step path for one day of duty-status events.",
		Long: "path reads duty-status events from a YAML or JSON file (\"-\" for stdin) and prints " +
			"the SVG path data drawn on the log grid. --date and --timezone override the file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(fileFlag, cmd.InOrStdin())
			if err != nil {
				return err
			}
			var in eventsFile
			if err := decodeFile(data, &in); err != nil {
				return err
			}

			loc, err := loadLocation(timezoneFlag, in.Timezone)
			if err != nil {
				return err
			}
			dateStr := dateFlag
			if dateStr == "" {
				dateStr = in.Date
			}
			if dateStr == "" {
				return fmt.Errorf("date is required (--date or \"date:\" in the file)")
			}
			date, err := domain.ParseDate(dateStr, loc)
			if err != nil {
				return err
			}
			events, err := in.toEvents(loc)
			if err != nil {
				return err
			}

			svc := service.NewTimelineService(nil, timeline.DefaultFrame, commandLogger(cmd.ErrOrStderr()))
			rendered, err := svc.RenderDay(ctx, ports.RenderDayInput{
				Date:   date,
				Events: events,
				Frame:  timeline.Frame{Width: widthFlag, Height: heightFlag},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonFlag {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"date":     rendered.Date.Format("2006-01-02"),
					"width":    rendered.Frame.Width,
					"height":   rendered.Frame.Height,
					"segments": rendered.Segments,
					"d":        rendered.PathData,
				})
			}

			fmt.Fprintln(out, rendered.PathData)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "-", "Events file (YAML or JSON); \"-\" reads stdin")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Log date in YYYY-MM-DD (default: from file)")
	cmd.Flags().StringVar(&timezoneFlag, "timezone", "", "IANA timezone for the day and offset-less times (default: from file, then UTC)")
	cmd.Flags().Float64Var(&widthFlag, "width", 0, "Grid width (default 670)")
	cmd.Flags().Float64Var(&heightFlag, "height", 0, "Grid height (default 150)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print segments as JSON instead of path data")

	return cmd
}
