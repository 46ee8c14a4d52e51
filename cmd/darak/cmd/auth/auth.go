package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd groups account operations: register, login, logout, whoami.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the device account",
	Long:  `Register, log in and out, and inspect the current account.`,
}
