package main

import "github.com/jeff-99/sage/cmd"

func main() {
	cmd.Execute()
}
