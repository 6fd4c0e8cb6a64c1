package main

import "github.com/kse201/interpreter/cmd"

func main() {
	cmd.Execute()
}
