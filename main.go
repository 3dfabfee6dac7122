package main

import (
	"os"

	"barragoon/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
