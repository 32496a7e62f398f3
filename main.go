package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mchmarny/storefront/pkg/shop"
)

func main() {
	if err := shop.New(shop.SampleCatalog()).Run(context.Background()); err != nil {
		fmt.Printf("server error: %v", err)
		os.Exit(1)
	}
}
