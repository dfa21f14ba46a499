package main

import "github.com/nk2552003/umd/cmd"

func main() {
	cmd.Execute()
}
