package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Settings updates the user's store link. The stored account and the session
// copy are replaced together, so the dashboard reflects the change at once.
func (a *App) Settings(ctx context.Context) error {
	fmt.Printf("%s <%s>\n", a.user.FullName(), a.user.Email)

	link, err := getSimpleText(a.reader, "Enter your Daraz store URL", os.Stdout)
	if err != nil {
		return err
	}

	updated := *a.user
	updated.DarazStoreLink = link

	user, err := a.authService.UpdateUser(ctx, &updated)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	a.user = user
	fmt.Println("Settings saved.")
	return nil
}
