// cmd/labqc/main.go
package main

import (
	"biolab/internal/appshell"
	"biolab/internal/qcapp"
)

func main() { appshell.Main(qcapp.RunContext) }
