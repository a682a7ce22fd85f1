package main

import "accountsdesk/cmd/internal/cli"

func main() {
	cli.Execute()
}
