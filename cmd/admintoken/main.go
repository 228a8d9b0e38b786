// Command admintoken prints a signed bearer token for the admin endpoints.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"club-booking/internal/domain/auth"
	"club-booking/internal/pkg/jwt"

	"github.com/kelseyhightower/envconfig"
)

type env struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

func main() {
	name := flag.String("name", "", "name recorded in the token")
	role := flag.String("role", string(auth.RoleOrganizer), "organizer, treasurer or admin")
	flag.Parse()

	if err := run(*name, *role); err != nil {
		fmt.Fprintln(os.Stderr, "admintoken:", err)
		os.Exit(1)
	}
}

func run(name, roleName string) error {
	if name == "" {
		return fmt.Errorf("-name is required")
	}
	role, err := auth.NewRole(roleName)
	if err != nil {
		return err
	}

	var e env
	if err := envconfig.Process("", &e); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}

	token, err := jwt.NewService(e.Secret, e.Duration).GenerateToken(name, role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
