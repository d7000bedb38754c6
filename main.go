package main

import "github.com/pinpt/go-filterset/cmd"

func main() {
	cmd.Execute()
}
