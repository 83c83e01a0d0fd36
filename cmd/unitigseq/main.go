// cmd/unitigseq/main.go
package main

import (
	"unitigseq/internal/app"
	"unitigseq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
