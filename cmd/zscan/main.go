package main

import "github.com/MeKo-Tech/zscan/cmd/zscan/cmd"

func main() {
	cmd.Execute()
}
