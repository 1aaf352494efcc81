package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/daypact/api/pkg/jwt"
)

func main() {
	privateKeyPath := flag.String("private", "./keys/private.pem", "Path for the private key")
	publicKeyPath := flag.String("public", "./keys/public.pem", "Path for the public key")
	force := flag.Bool("force", false, "Overwrite existing key files")
	devToken := flag.Bool("dev-token", false, "Also print a signed development token")
	issuer := flag.String("issuer", "api.daypact.dev", "JWT issuer for the development token")
	expMins := flag.Int("exp", 60*24*7, "Development token expiration in minutes (default: 7 days)")

	flag.Parse()

	if !*force {
		if _, err := os.Stat(*privateKeyPath); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists (use -force to overwrite)\n", *privateKeyPath)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*privateKeyPath), 0700); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating key directory: %v\n", err)
		os.Exit(1)
	}

	if err := jwt.GenerateKeyPair(*privateKeyPath, *publicKeyPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating key pair: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Key Pair Generated")
	fmt.Println("==================")
	fmt.Printf("Private key:  %s\n", *privateKeyPath)
	fmt.Printf("Public key:   %s\n", *publicKeyPath)

	if !*devToken {
		return
	}

	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: *privateKeyPath,
		PublicKeyPath:  *publicKeyPath,
		Issuer:         *issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		os.Exit(1)
	}

	token, err := jwtService.Sign(jwt.Claims{
		UserID:   "dev-user",
		Email:    "dev@daypact.dev",
		Username: "dev",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
	fmt.Println()
	fmt.Println("Development Token")
	fmt.Println("=================")
	fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -H 'Authorization: Bearer <token>' http://localhost:8080/v1/auth/me")
}
