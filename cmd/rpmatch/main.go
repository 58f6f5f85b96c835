package main

import (
	"os"

	"github.com/tarantool/rpmatch/internal/rpmatch/app"
)

var (
	version = "1.0.0"
)

func main() {
	application := app.NewApp(version)
	os.Exit(application.Run())
}
