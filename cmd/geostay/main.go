package main

import "github.com/rishab9750/map-my-locations/internal/cli"

func main() {
	cli.Execute()
}
