// cmd/labfetch/main.go
package main

import (
	"biolab/internal/appshell"
	"biolab/internal/fetchapp"
)

func main() { appshell.Main(fetchapp.RunContext) }
