package main

import "github.com/mdsplice/mdsplice/cmd"

func main() {
	cmd.Execute()
}
