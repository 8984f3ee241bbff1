package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"

	"github.com/iWorld-y/trendify/app/trendify/internal/conf"
)

func printBanner(c *conf.Server) {
	addr := ":8000"
	if c != nil && c.Http != nil && c.Http.Addr != "" {
		addr = c.Http.Addr
	}

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	hr := lineColor + strings.Repeat("═", 56) + banner.ColorReset

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
	fmt.Fprintf(os.Stderr, "%s  TRENDIFY AI — Content Strategy Engine%s\n\n", textColor, banner.ColorReset)
	for _, kv := range [][2]string{
		{"Version", Version},
		{"Service", Name},
		{"Listen", addr},
	} {
		fmt.Fprintf(os.Stderr, "%s  %-10s %s%s\n", textColor, kv[0], kv[1], banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
}
