package friend

import (
	"github.com/spf13/cobra"
)

// FriendCmd groups friend-graph operations.
var FriendCmd = &cobra.Command{
	Use:   "friend",
	Short: "Manage your friend list",
	Long: `Friendship is one-way: adding someone lets you see the entries they
share with all friends, not the other way around.`,
}
