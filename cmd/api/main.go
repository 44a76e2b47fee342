package main

import "starwars_api/internal/cli"

func main() {
	cli.Execute()
}
