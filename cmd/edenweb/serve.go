package main

import (
	"fmt"

	edenhttp "github.com/rplatt/edenweb/http"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := firstNonEmpty(c.Addr, deps.Config.Addr)
	dir := firstNonEmpty(c.Dir, deps.Config.OutputDir)

	srv := edenhttp.NewServer(addr, dir)
	bound, err := srv.Open()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Serving %s at http://%s\n", dir, bound)

	<-deps.Ctx.Done()
	return srv.Close()
}
