// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config command handler for the mentionctx CLI.
//
// Command: config [show|path|init]
//
//	show  Print the effective configuration (default)
//	path  Print the configuration file location
//	init  Write a config file with the built-in defaults
package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jdarrow/mentionctx/internal/config"
)

// HandleConfig runs the config command.
func HandleConfig(args *Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args)
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	case "init":
		return handleConfigInit(args)
	default:
		return fmt.Errorf("unknown config subcommand %q (want show, path, or init)", args.Subcommand)
	}
}

func handleConfigShow(args *Args) error {
	cfg := config.Current()

	if args.JSON {
		return NewJSONResponse("config", cfg).Print()
	}

	fmt.Println(TitleStyle.Render("mentionctx configuration"))
	return toml.NewEncoder(os.Stdout).Encode(cfg)
}

func handleConfigInit(args *Args) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := config.Save(config.Default()); err != nil {
		return err
	}
	if !args.Quiet {
		fmt.Printf("%s %s\n", SuccessStyle.Render("wrote"), path)
	}
	return nil
}
