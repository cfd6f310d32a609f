package main

import "github.com/dunossauro/dunoslide/cmd"

func main() {
	cmd.Execute()
}
