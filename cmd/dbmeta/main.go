package main

import "github.com/dbsmedya/dbmeta/cmd/dbmeta/cmd"

func main() {
	cmd.Execute()
}
