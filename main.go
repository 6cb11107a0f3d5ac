package main

import "github.com/Pjt727/classhours/cmd"

func main() {
	cmd.Execute()
}
