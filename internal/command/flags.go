// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var (
	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}

	checkFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "check",
		Usage:       "report what would change without writing",
		HideDefault: true,
	}

	diffFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "diff",
		Usage:       "render the before/after difference",
		HideDefault: true,
	}

	snapshotFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "snapshot",
		Usage:       "snapshot the remote object before writing",
		HideDefault: true,
	}

	passphraseFlag *cli.StringFlag = &cli.StringFlag{
		Name:    "passphrase",
		Aliases: []string{"p"},
		Usage:   "passphrase to unlock the encrypted keyfile",
	}
)

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show local timestamps",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewAPIKeyFlag constructs a cli.StringFlag for the "apikey" flag, optionally
// namespaced to a command and config file. params[1] is the config file. The
// flag value is only the first rung of the credential ladder; the encrypted
// keyfile is consulted when nothing else yields a key.
func NewAPIKeyFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "apikey",
		Aliases: []string{"k"},
		Usage:   "NS1 API key to use for all commands",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("NS1_APIKEY"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewEndpointFlag constructs a cli.StringFlag for the "endpoint" flag,
// optionally namespaced to a command and config file. params[1] is the
// config file. The default is the NS1 managed DNS API; dedicated instances
// override it here or via NS1CTL_ENDPOINT.
func NewEndpointFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "endpoint",
		Aliases: []string{"e"},
		Usage:   "NS1 API endpoint to use for all commands",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("NS1CTL_ENDPOINT"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas checks if the given executable exists on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
