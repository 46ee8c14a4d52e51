package ticket

import (
	"github.com/spf13/cobra"
)

// TicketCmd groups ticket-stub operations.
var TicketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Manage ticket stubs",
	Long:  `Ticket stubs are stored images displayed with a random tilt.`,
}
