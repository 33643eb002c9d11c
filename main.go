package main

import "github.com/darrylcauldwell/meWeb/cmd"

func main() {
	cmd.Execute()
}
