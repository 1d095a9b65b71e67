package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sgurov/authgate/internal/common"
)

// Login authenticates against the server and stores the session token for
// subsequent commands.
func (a *App) Login(ctx context.Context) error {

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

	result, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println("Login unsuccessful:", err.Error())
		return err
	}

	a.token = result.Token
	a.userName = email

	fmt.Println("Login successful")
	return nil
}

// Logout forgets the stored session token. Tokens are self-contained, so
// there is nothing to revoke server-side.
func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.userName = ""
	fmt.Println("Logged out")
	return nil
}
