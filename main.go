package main

import "github.com/galushin/overtime/cmd"

func main() {
	cmd.Execute()
}
