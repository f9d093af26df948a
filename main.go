package main

import "termtools/cmd"

func main() {
	cmd.Execute()
}
