// -- cmd/move.go --
package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sychotixdev/Kalon/internal/config"
	"github.com/sychotixdev/Kalon/internal/device"
	"github.com/sychotixdev/Kalon/internal/motion"
	"github.com/sychotixdev/Kalon/internal/mover"
	"github.com/sychotixdev/Kalon/internal/observability"
)

var (
	moveX        int
	moveY        int
	moveDuration time.Duration
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move the cursor to a target coordinate along a humanized path.",
	Long: `Move traces a randomized arc from the current cursor position to the
target, pacing the intermediate positions so the whole motion takes the
requested duration. Playback busy-waits between steps and occupies a CPU
core until the move completes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg config.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return err
		}
		logger := observability.GetLogger()

		m := mover.New(cfg.Motion, device.NewScreenCursor(), nil, logger)
		target := motion.Point{X: moveX, Y: moveY}

		if err := m.MoveTo(target, moveDuration); err != nil {
			return err
		}
		logger.Info("cursor move complete",
			zap.Stringer("target", target),
			zap.Duration("duration", moveDuration),
		)
		return nil
	},
}

func init() {
	moveCmd.Flags().IntVar(&moveX, "x", 0, "target x coordinate (pixels, >= 0)")
	moveCmd.Flags().IntVar(&moveY, "y", 0, "target y coordinate (pixels, >= 0)")
	moveCmd.Flags().DurationVar(&moveDuration, "duration", time.Second, "total move duration (>= 1ms)")
	_ = moveCmd.MarkFlagRequired("x")
	_ = moveCmd.MarkFlagRequired("y")
	rootCmd.AddCommand(moveCmd)
}
