package main

import (
	"darak/cmd/darak/cmd"
)

func main() {
	cmd.Execute()
}
