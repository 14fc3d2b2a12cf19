// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ns1ctl/ns1ctl/internal/meta"
)

const bashCompletionScript = `# bash completion for ns1ctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_ns1ctl()
{
    local cur prev cmd sub
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local kinds="zone record monitor notifylist datasource datafeed tsig team"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "$kinds inspect completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--apikey -k --attrs -a --color -c --endpoint -e --filter --local -l --output -o --passphrase -p --sort -s --titles -t --tldr"
  local write="--check --diff --snapshot"

    case "$cmd" in
    completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        inspect)
            if [[ ${COMP_CWORD} -eq 2 ]]; then
                COMPREPLY=( $(compgen -W "$kinds" -- "$cur") )
                return 0
            fi
            local opts="--apikey -k --endpoint -e --passphrase -p --zone --type --source"
            ;;
        zone|record|monitor|notifylist|datasource|datafeed|tsig|team)
            if [[ ${COMP_CWORD} -eq 2 ]]; then
                local subs="apply get list ls rm"
                if [[ "$cmd" == "datasource" ]]; then
                    subs="get list ls"
                fi
                COMPREPLY=( $(compgen -W "$subs" -- "$cur") )
                return 0
            fi
            sub=${COMP_WORDS[2]}
            local opts="$common"
            case "$sub" in
            apply)
                opts="--file -f $write --apikey -k --endpoint -e --passphrase -p --color -c"
                ;;
            rm)
                opts="$write --apikey -k --endpoint -e --passphrase -p --color -c"
                ;;
            esac
            if [[ "$cmd" == "record" ]]; then
                opts="$opts --zone --type"
            elif [[ "$cmd" == "datafeed" ]]; then
                opts="$opts --source"
            fi
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--file" || "$prev" == "-f" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _ns1ctl ns1ctl
`

const zshCompletionScript = `#compdef ns1ctl

_ns1ctl() {
  local -a cmds
  cmds=(
    'zone:manage DNS zones'
    'record:manage DNS records'
    'monitor:manage monitoring jobs'
    'notifylist:manage notify lists'
    'datasource:inspect data sources'
    'datafeed:manage data feeds'
    'tsig:manage TSIG keys'
    'team:manage account teams'
    'inspect:interactive resource inspector'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-k --apikey)'{-k,--apikey}'[NS1 API key]:key'
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-e --endpoint)'{-e,--endpoint}'[NS1 API endpoint]:endpoint'
  '--filter[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-p --passphrase)'{-p,--passphrase}'[keyfile passphrase]'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  local -a write
  write=(
  '--check[report without writing]'
  '--diff[render the difference]'
  '--snapshot[snapshot before writing]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'ns1ctl commands' cmds
    return
  fi

  case $words[2] in
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    inspect)
      _arguments -C \
        '2:kind:(zone record monitor notifylist datasource datafeed tsig team)' \
        '--zone[zone of the record]:zone' \
        '--type[record type]:type' \
        '--source[data source of the feed]:source' \
        $common
      ;;
    zone|record|monitor|notifylist|datasource|datafeed|tsig|team)
      case $words[3] in
        apply)
          _arguments -C \
            '(-f --file)'{-f,--file}'[manifest file]:file:_files' \
            $write $common
          ;;
        rm)
          _arguments -C $write $common
          ;;
        *)
          _arguments -C \
            '2:subcommand:(apply get list ls rm)' \
            $common
          ;;
      esac
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _ns1ctl ns1ctl ns1ctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: ns1ctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "ns1ctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
