package main

import "awssetup/cmd"

func main() {
	cmd.Execute()
}
