package main

import "github.com/theirongolddev/hallo/cmd"

func main() {
	cmd.Execute()
}
