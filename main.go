package main

import "travelcms/cli"

func main() {
	cli.Execute()
}
