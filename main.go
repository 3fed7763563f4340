package main

import "calcdrills/cmd"

func main() {
	cmd.Execute()
}
