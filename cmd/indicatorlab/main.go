package main

import (
	"github.com/tradeacademy/indicatorlab/pkg/cmd"
)

func main() {
	cmd.Execute()
}
