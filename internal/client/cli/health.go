package cli

import (
	"context"
	"fmt"
)

// Health probes the server's health endpoint.
func (a *App) Health(ctx context.Context) error {

	health, err := a.client.Health(ctx)
	if err != nil {
		fmt.Println("Server unreachable:", err.Error())
		return err
	}

	fmt.Printf("status=%s users=%d at=%s\n", health.Status, health.Users, health.Timestamp)
	return nil
}
