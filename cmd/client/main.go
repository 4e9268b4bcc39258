// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

// Command chat-client is a small CLI for the chat backend API.
//
// Usage:
//
//	chat-client [flags] <command> [args]
//
// Commands:
//
//	register <name> <password>    create an account and store the token
//	login <name> <password>       log in and store the token
//	logout                        revoke the stored token
//	profile                       show the authenticated member's profile
//	update <field>=<value> ...    update profile fields (name, password)
//	send <text>                   post a message to the shared chat
//	messages [offset [limit]]     list chat messages oldest first
//
// The session token is persisted in a file between invocations (by default
// ~/.chat-backend-token), so a single login serves any number of commands.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/asemenov/go-chat-backend/internal/client"
	"github.com/asemenov/go-chat-backend/internal/config"
	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	_ = godotenv.Load()

	log := logger.NewCLILogger("chat-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := client.NewAPIClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}

	if token, err := loadToken(); err == nil && token != "" {
		api.SetToken(token)
	}

	ctx := context.Background()

	if err = runCommand(ctx, api, args[0], args[1:]); err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func runCommand(ctx context.Context, api client.APIClient, command string, args []string) error {
	switch command {
	case "register":
		return runRegister(ctx, api, args)
	case "login":
		return runLogin(ctx, api, args)
	case "logout":
		return runLogout(ctx, api)
	case "profile":
		return runProfile(ctx, api)
	case "update":
		return runUpdate(ctx, api, args)
	case "send":
		return runSend(ctx, api, args)
	case "messages":
		return runMessages(ctx, api, args)
	case "version":
		printBuildInfo()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runRegister(ctx context.Context, api client.APIClient, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: register <name> <password>")
	}

	resp, err := api.Register(ctx, models.RegisterRequest{Name: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	if err = saveToken(resp.Token); err != nil {
		return err
	}

	fmt.Printf("registered as %s (id %d)\n", resp.Member.Name, resp.Member.ID)
	return nil
}

func runLogin(ctx context.Context, api client.APIClient, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <name> <password>")
	}

	resp, err := api.Login(ctx, models.LoginRequest{Name: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	if err = saveToken(resp.Token); err != nil {
		return err
	}

	fmt.Printf("logged in as %s (id %d)\n", resp.Member.Name, resp.Member.ID)
	return nil
}

func runLogout(ctx context.Context, api client.APIClient) error {
	if err := api.Logout(ctx); err != nil {
		return err
	}
	if err := clearToken(); err != nil {
		return err
	}

	fmt.Println("logged out")
	return nil
}

func runProfile(ctx context.Context, api client.APIClient) error {
	member, err := api.Profile(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("id: %d\nname: %s\njoined: %s\n", member.ID, member.Name, member.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func runUpdate(ctx context.Context, api client.APIClient, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: update <field>=<value> ... (fields: name, password)")
	}

	var req models.ProfileUpdateRequest
	for _, arg := range args {
		field, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected <field>=<value>, got %q", arg)
		}

		switch field {
		case "name":
			req.Name = &value
		case "password":
			req.Password = &value
		default:
			return fmt.Errorf("unknown field %q (fields: name, password)", field)
		}
	}

	member, err := api.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("profile updated: %s (id %d)\n", member.Name, member.ID)
	return nil
}

func runSend(ctx context.Context, api client.APIClient, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return errors.New("usage: send <text>")
	}

	message, err := api.SendMessage(ctx, models.PostMessageRequest{Text: text})
	if err != nil {
		return err
	}

	fmt.Printf("sent message %d\n", message.ID)
	return nil
}

func runMessages(ctx context.Context, api client.APIClient, args []string) error {
	var offset, limit int64 = 0, -1
	var err error

	if len(args) > 0 {
		if offset, err = strconv.ParseInt(args[0], 10, 64); err != nil {
			return fmt.Errorf("offset must be an integer: %w", err)
		}
	}
	if len(args) > 1 {
		if limit, err = strconv.ParseInt(args[1], 10, 64); err != nil {
			return fmt.Errorf("limit must be an integer: %w", err)
		}
	}

	messages, err := api.Messages(ctx, offset, limit)
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		fmt.Println("no messages")
		return nil
	}

	for _, message := range messages {
		fmt.Printf("[%s] %s: %s\n", message.CreatedAt.Format("2006-01-02 15:04"), message.Author.Name, message.Text)
	}
	return nil
}

// ── token file ──────────────────────────────────────────────────────────────

func tokenFilePath() (string, error) {
	if path := os.Getenv("CLIENT_TOKEN_FILE"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".chat-backend-token"), nil
}

func loadToken() (string, error) {
	path, err := tokenFilePath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}

func saveToken(token string) error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}

func clearToken() error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: chat-client [flags] <command> [args]")
	fmt.Fprintln(os.Stderr, "commands: register, login, logout, profile, update, send, messages, version")
	fmt.Fprintln(os.Stderr, "run with -h for flags")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
