package main

import "reconciler/cmd"

func main() {
	cmd.Execute()
}
