// One-off: go run scripts/gentoken.go <user-id>
// Mints a signed session token for local API testing. Reads JWT_SECRET
// and TOKEN_TTL from the environment.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/PremjitDas/Task-Management-App/internal/token"
)

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}
	userID := int64(1)
	if len(os.Args) > 1 {
		n, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "user id must be a number")
			os.Exit(1)
		}
		userID = n
	}
	ttl := 24 * time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		}
	}
	signed, err := token.NewCodec(secret, ttl).Issue(userID)
	if err != nil {
		panic(err)
	}
	fmt.Print(signed)
}
