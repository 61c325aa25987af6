package cli

import (
	"context"
	"log"
	"os"

	"github.com/xshsama/learntrack/internal/client/models"
)

// EditProfile interactively edits the profile. Empty answers leave the
// corresponding field unchanged; only answered fields go into the patch.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first")
		return nil
	}

	patch := models.ProfilePatch{}

	for _, field := range []struct {
		prompt string
		target **string
	}{
		{"Nickname (empty to keep)", &patch.Nickname},
		{"Bio (empty to keep)", &patch.Bio},
		{"Location (empty to keep)", &patch.Location},
		{"Education (empty to keep)", &patch.Education},
		{"Profession (empty to keep)", &patch.Profession},
	} {
		v, err := getSimpleText(a.reader, field.prompt, os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			val := v
			*field.target = &val
		}
	}

	if err := a.profiles.Update(ctx, patch); err != nil {
		log.Printf("Profile update failed: %s", err.Error())
		return err
	}
	if _, err := a.session.UpdateUser(ctx, patch); err != nil {
		log.Printf("Failed to sync local profile: %s", err.Error())
		return err
	}

	printlnFn("Profile updated")
	return nil
}
