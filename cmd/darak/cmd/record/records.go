package record

import (
	"github.com/spf13/cobra"
)

// RecordCmd groups journal record operations.
var RecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Manage journal records",
	Long:  `Create, list, inspect and delete journal entries.`,
}
