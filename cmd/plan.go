// -- cmd/plan.go --
package cmd

import (
	"fmt"
	"os"
	"time"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sychotixdev/Kalon/internal/config"
	"github.com/sychotixdev/Kalon/internal/device"
	"github.com/sychotixdev/Kalon/internal/motion"
	"github.com/sychotixdev/Kalon/internal/mover"
	"github.com/sychotixdev/Kalon/internal/observability"
)

var (
	planX        int
	planY        int
	planFromX    int
	planFromY    int
	planDuration time.Duration
	planOutput   string
)

// plannedPoint is the JSON shape of one waypoint.
type plannedPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// plannedMovement is the JSON shape of one scheduled step.
type plannedMovement struct {
	DelayMs int64          `json:"delay_ms"`
	Points  []plannedPoint `json:"points"`
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Emit the movement schedule for a move as JSON, without touching the cursor.",
	Long: `Plan runs the path generator and scheduler exactly as move would, but
replays nothing: the resulting schedule is written as JSON for inspection of
path shape and timing distribution. The starting position is taken from
--from-x/--from-y instead of the OS cursor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg config.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return err
		}
		logger := observability.GetLogger()

		start := motion.Point{X: planFromX, Y: planFromY}
		m := mover.New(cfg.Motion, device.Fixed(start), nil, logger)

		movements, err := m.Plan(motion.Point{X: planX, Y: planY}, planDuration)
		if err != nil {
			return err
		}

		planned := make([]plannedMovement, 0, len(movements))
		for _, mv := range movements {
			pts := make([]plannedPoint, 0, len(mv.Points))
			for _, p := range mv.Points {
				pts = append(pts, plannedPoint{X: p.X, Y: p.Y})
			}
			planned = append(planned, plannedMovement{
				DelayMs: mv.Delay.Milliseconds(),
				Points:  pts,
			})
		}

		out, err := json.MarshalIndent(planned, "", "  ")
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		if planOutput == "" || planOutput == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		return os.WriteFile(planOutput, append(out, '\n'), 0o644)
	},
}

func init() {
	planCmd.Flags().IntVar(&planX, "x", 0, "target x coordinate (pixels, >= 0)")
	planCmd.Flags().IntVar(&planY, "y", 0, "target y coordinate (pixels, >= 0)")
	planCmd.Flags().IntVar(&planFromX, "from-x", 0, "assumed starting x coordinate")
	planCmd.Flags().IntVar(&planFromY, "from-y", 0, "assumed starting y coordinate")
	planCmd.Flags().DurationVar(&planDuration, "duration", time.Second, "total move duration (>= 1ms)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "-", "output file (\"-\" for stdout)")
	_ = planCmd.MarkFlagRequired("x")
	_ = planCmd.MarkFlagRequired("y")
	rootCmd.AddCommand(planCmd)
}
