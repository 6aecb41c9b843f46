package main

import (
	"github.com/pedidolabs/order-api/cmd"
)

func main() {
	cmd.Start()
}
