// Command hashpassword prints the bcrypt hash to put in auth.admin_password_hash.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"bakery/infrastructure/auth"
)

func main() {
	password := strings.Join(os.Args[1:], " ")
	if password == "" {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			password = scanner.Text()
		}
	}
	if password == "" {
		fmt.Fprintln(os.Stderr, "usage: hashpassword <password> (or pass it on stdin)")
		os.Exit(2)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashpassword: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
