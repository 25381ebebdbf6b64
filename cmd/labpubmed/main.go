// cmd/labpubmed/main.go
package main

import (
	"biolab/internal/appshell"
	"biolab/internal/pubmedapp"
)

func main() { appshell.Main(pubmedapp.RunContext) }
