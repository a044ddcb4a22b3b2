// Command hashpw prints the bcrypt hash of a password for AUTH_PASSWORD_HASH.
//
//	hashpw <password>
//
// With no argument the password is read from the first line of stdin.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"notekeeper/internal/utils"
)

func main() {
	password, err := readPassword()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readPassword() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", fmt.Errorf("empty password")
	}
	return line, nil
}
