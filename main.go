package main

import "github.com/aryabanda/Hospital-management-system/cmd"

func main() {
	cmd.Execute()
}
