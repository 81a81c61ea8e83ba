package main

import "travelplanner/internal/cli"

func main() {
	cli.Execute()
}
