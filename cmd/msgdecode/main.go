package main

import "github.com/akave-ai/msgdecode/internal/cmd"

func main() {
	cmd.Execute()
}
