// cmd/labalign/main.go
package main

import (
	"biolab/internal/appshell"
	"biolab/internal/alignapp"
)

func main() { appshell.Main(alignapp.RunContext) }
