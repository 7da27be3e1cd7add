// healthcheck consulta /health de una instancia en marcha; sale con 1 si no responde 2xx.
// Pensado para HEALTHCHECK de contenedores sin shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"petclinic/internal/platform/httpclient"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	baseURL := flag.String("url", "http://127.0.0.1:"+port, "base url of the running server")
	timeout := flag.Duration("timeout", httpclient.DefaultTimeout, "request timeout")
	flag.Parse()

	c, err := httpclient.New(*baseURL, *timeout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout+time.Second)
	defer cancel()

	if err := c.Health(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "unhealthy: %v\n", err)
		os.Exit(1)
	}
}
