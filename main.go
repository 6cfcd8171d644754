/*
Copyright © 2026 mrkndrei

*/
package main

import "github.com/mrkndrei/hexlab/cmd"

func main() {
	cmd.Execute()
}
