package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sgurov/authgate/internal/common"
)

// Register prompts for the new account's fields and creates it on the
// server. The password is read without echo and wiped after use.
func (a *App) Register(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.client.Register(ctx, username, email, string(password))
	if err != nil {
		fmt.Println("Registration unsuccessful:", err.Error())
		return err
	}

	fmt.Printf("Registered %s (id=%d)\n", account.Email, account.ID)
	return nil
}
