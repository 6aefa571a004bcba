package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/timetable/internal/engine"
)

var batchGenerateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Create a batch filled with random subjects",
	Long: `Create a batch where every slot except the lunch slot is drawn at
random from the subject list. Slot 3 is always Lunch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.AutoGenerate(context.Background(), &engine.AutoGenerateRequest{Name: args[0]})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Generated batch: %s", result.Name))
		PrintSection(result.Name)
		PrintSchedule(result.Schedule)
		return nil
	},
}
