package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/timetable/internal/engine"
)

var assignYes bool

var assignCmd = &cobra.Command{
	Use:   "assign <batch> <day> <slot> <subject...>",
	Short: "Put a subject into a slot",
	Long: `Put a subject into one slot of a batch's day.

Only Free slots can be assigned directly. Assigning over Lunch asks for
confirmation unless --yes is given. An occupied slot is left as is and the
free slots of that day are listed instead.

Days accept full names or three-letter abbreviations (mon, tue, ...).
Slots are numbered 0 to 5.

Examples:
  timetable assign "Batch A" monday 2 Physics
  timetable assign "Batch A" wed 4 Linux Lab
  timetable assign "Batch A" fri 3 Physics --yes`,
	Args: cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := engine.ParseSlot(args[2])
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		req := &engine.AssignRequest{
			Batch:        args[0],
			Day:          args[1],
			Slot:         slot,
			Subject:      strings.Join(args[3:], " "),
			ConfirmLunch: assignYes,
		}

		result, err := eng.Assign(ctx, req)
		if errors.Is(err, engine.ErrConfirmationRequired) {
			if jsonOutput || !promptInteractive() {
				return fmt.Errorf("%w; rerun with --yes to replace it", err)
			}

			PrintWarning(fmt.Sprintf("Slot %d on %s is the lunch break.", slot, args[1]))
			if !promptConfirm("Replace lunch with " + req.Subject + "?") {
				return fmt.Errorf("assignment cancelled by user")
			}

			// Retry with confirmation
			req.ConfirmLunch = true
			result, err = eng.Assign(ctx, req)
		}
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Assigned %s to %s, %s slot %d", result.Subject, result.Batch, result.Day, result.Slot))
		PrintLabelValue("Time", result.Time)
		PrintLabelValue("Previous", result.Previous)
		return nil
	},
}

func init() {
	assignCmd.Flags().BoolVarP(&assignYes, "yes", "y", false, "Replace a Lunch slot without asking")
}
