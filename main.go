package main

import "github.com/frahmantamala/user-admin/cmd"

func main() {
	cmd.Execute()
}
