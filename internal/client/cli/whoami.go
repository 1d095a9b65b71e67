package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sgurov/authgate/internal/client/api"
)

// Whoami fetches the authorized profile for the stored session token.
func (a *App) Whoami(ctx context.Context) error {

	account, err := a.client.Profile(ctx, a.token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Println("Session is no longer valid, please login again")
			a.token = ""
			a.userName = ""
			return err
		}
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("id=%d username=%s email=%s registered=%s\n",
		account.ID, account.Username, account.Email, account.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
