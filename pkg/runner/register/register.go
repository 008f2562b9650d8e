package register

import (
	"context"
	"fmt"

	"tableflip.dev/studyon/pkg/app"
)

// Register creates a new account with its default profile.
type Register struct {
	Name       string
	Email      string
	Credential string

	Service *app.Service
}

func (r *Register) Do(ctx context.Context) error {
	acc, err := r.Service.Register(ctx, r.Name, r.Email, r.Credential)
	if err != nil {
		return err
	}
	fmt.Printf("Conta criada com sucesso! Bem-vindo(a), %s!\n", acc.Name)
	return nil
}
