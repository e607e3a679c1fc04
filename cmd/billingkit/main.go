package main

import (
	"os"

	"github.com/tacogips/billingkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
