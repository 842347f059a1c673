package main

import "processo-manager/cmd"

func main() {
	cmd.Execute()
}
