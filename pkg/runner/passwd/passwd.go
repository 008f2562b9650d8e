package passwd

import (
	"context"
	"fmt"

	"tableflip.dev/studyon/pkg/app"
)

// Reset replaces an account's credential.
type Reset struct {
	Email        string
	New          string
	Confirmation string

	Service *app.Service
}

func (r *Reset) Do(ctx context.Context) error {
	if err := r.Service.ResetCredential(ctx, r.Email, r.New, r.Confirmation); err != nil {
		return err
	}
	fmt.Println("Senha redefinida com sucesso!")
	return nil
}
