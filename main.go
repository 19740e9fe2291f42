package main

import "github.com/naveego/git-pivotal/cmd"

func main() {
	cmd.Execute()
}
