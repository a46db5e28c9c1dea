package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/misp/cmd/misp/app"
)

func main() {
	defer klog.Flush()

	if err := app.NewMispCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
