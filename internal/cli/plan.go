package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/eldlog"
	"github.com/99minutos/eld-logs/internal/core/geo"
	"github.com/99minutos/eld-logs/internal/core/ports"
	"github.com/99minutos/eld-logs/internal/core/service"
	"github.com/99minutos/eld-logs/internal/core/timeline"
)

func newPlanCommand(ctx context.Context) *cobra.Command {
	var (
		milesFlag    float64
		hoursFlag    float64
		cycleFlag    float64
		startFlag    string
		timezoneFlag string
		pathsFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "plan --distance-miles M --duration-hours H",
		Short: "Plan hours-of-service log sheets for a trip.",
		Long: "plan simulates a property-carrying driver (11h driving, 14h window, 70h/8-day cycle) " +
			"over a trip of the given driving distance and duration and prints one summary per log day.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := loadLocation(timezoneFlag)
			if err != nil {
				return err
			}
			start := time.Now().In(loc)
			if startFlag != "" {
				if start, err = domain.ParseTimestamp(startFlag, loc); err != nil {
					return err
				}
			}

			log := commandLogger(cmd.ErrOrStderr())
			timelineSvc := service.NewTimelineService(nil, timeline.DefaultFrame, log)
			trips := service.NewTripService(timelineSvc, service.NewMapService(log), eldlog.PropertyCarrier, log)

			duration, err := hoursToDuration(hoursFlag)
			if err != nil {
				return err
			}

			plan, err := trips.Plan(ctx, ports.PlanTripInput{
				Start:          start,
				DistanceMeters: milesFlag * geo.MetersPerMile,
				Duration:       duration,
				CycleUsedHours: cycleFlag,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading(out, "Trip %s: %.2f mi, %.2f h driving, %d log day(s)",
				plan.ID[:8], plan.DistanceMiles, plan.DurationHours, len(plan.Days))

			for _, d := range plan.Days {
				fmt.Fprintln(out)
				heading(out, "Day %d  %s", d.Log.DayNo, d.Log.Date.Format("Mon 2006-01-02"))

				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "  Driving\t%.2f h\n", d.Log.Summary.DriveHours)
				fmt.Fprintf(tw, "  On duty\t%.2f h\n", d.Log.Summary.OnDutyHours)
				fmt.Fprintf(tw, "  Distance\t%.2f mi\n", d.Log.Summary.DistanceMiles)
				_ = tw.Flush()

				if len(d.Log.Stops) > 0 {
					stops := make([]string, len(d.Log.Stops))
					for i, s := range d.Log.Stops {
						stops[i] = s.Time + " " + stopLabel(string(s.Type))
					}
					fmt.Fprintf(out, "  Stops     %s\n", strings.Join(stops, ", "))
				}
				if pathsFlag {
					fmt.Fprintf(out, "  Path      %s\n", d.Path.PathData)
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&milesFlag, "distance-miles", 0, "Total driving distance in miles")
	cmd.Flags().Float64Var(&hoursFlag, "duration-hours", 0, "Total driving time in hours")
	cmd.Flags().Float64Var(&cycleFlag, "cycle-used", 0, "Hours already used in the 70h cycle")
	cmd.Flags().StringVar(&startFlag, "start", "", "Trip start, RFC 3339 or YYYY-MM-DDTHH:MM (default: now)")
	cmd.Flags().StringVar(&timezoneFlag, "timezone", "", "IANA timezone for --start and day boundaries (default UTC)")
	cmd.Flags().BoolVar(&pathsFlag, "paths", false, "Also print each day's SVG path data")
	_ = cmd.MarkFlagRequired("distance-miles")
	_ = cmd.MarkFlagRequired("duration-hours")

	return cmd
}

// hoursToDuration converts a flag value, rejecting values a time.Duration
// cannot hold.
func hoursToDuration(h float64) (time.Duration, error) {
	if math.IsNaN(h) || math.Abs(h) > math.MaxInt64/float64(time.Hour) {
		return 0, fmt.Errorf("%w: duration %g hours out of range", domain.ErrInvalidTrip, h)
	}
	return time.Duration(h * float64(time.Hour)), nil
}
