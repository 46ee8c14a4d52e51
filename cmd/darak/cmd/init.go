package cmd

import (
	"darak/cmd/darak/cmd/auth"
	"darak/cmd/darak/cmd/backup"
	"darak/cmd/darak/cmd/bucket"
	"darak/cmd/darak/cmd/category"
	"darak/cmd/darak/cmd/friend"
	"darak/cmd/darak/cmd/record"
	"darak/cmd/darak/cmd/settings"
	"darak/cmd/darak/cmd/ticket"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	rootCmd.AddCommand(record.RecordCmd)
	record.RecordCmd.AddCommand(record.CreateCmd)
	record.RecordCmd.AddCommand(record.ListCmd)
	record.RecordCmd.AddCommand(record.GetCmd)
	record.RecordCmd.AddCommand(record.DeleteCmd)

	rootCmd.AddCommand(ticket.TicketCmd)
	ticket.TicketCmd.AddCommand(ticket.SaveCmd)
	ticket.TicketCmd.AddCommand(ticket.ListCmd)
	ticket.TicketCmd.AddCommand(ticket.DeleteCmd)

	rootCmd.AddCommand(friend.FriendCmd)
	friend.FriendCmd.AddCommand(friend.AddCmd)
	friend.FriendCmd.AddCommand(friend.ListCmd)

	rootCmd.AddCommand(backup.BackupCmd)
	backup.BackupCmd.AddCommand(backup.ExportCmd)
	backup.BackupCmd.AddCommand(backup.ImportCmd)
	backup.BackupCmd.AddCommand(backup.RecoverCmd)

	rootCmd.AddCommand(bucket.BucketCmd)
	rootCmd.AddCommand(category.CategoryCmd)
	rootCmd.AddCommand(settings.SettingsCmd)

	rootCmd.AddCommand(serveCmd)
}
