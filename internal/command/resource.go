// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ns1ctl/ns1ctl/internal/api"
	"github.com/ns1ctl/ns1ctl/internal/log"
	"github.com/ns1ctl/ns1ctl/internal/meta"
	"github.com/ns1ctl/ns1ctl/internal/recon"
	"github.com/ns1ctl/ns1ctl/internal/resource"
)

// Scope carries the addressing context a kind needs beyond the resource
// name: the zone and type for records, the source for data feeds, and the
// record write mode. It is built from flags on read commands and from the
// manifest on apply.
type Scope struct {
	Zone       string
	Type       string
	Source     string
	RecordMode resource.RecordMode
}

// ResourceCommandBuilder constructs the cli.Command for one resource kind
// (zone, record, monitor, ...) using a consistent pattern. Every kind gets
// apply/get/list/rm subcommands wired to the same remote client factory;
// read-only kinds get just get and list. The builder automatically wires
// metadata, adds the tldr flag, applies global flags, and sets up
// validators.
type ResourceCommandBuilder struct {
	Kind         resource.Kind
	Usage        string
	DefaultAttrs []string

	// ScopeFlags are the kind's extra addressing flags (--zone, --type,
	// --source), included on every subcommand that takes a name argument.
	ScopeFlags func() []cli.Flag

	// ReadOnly drops the apply and rm subcommands for kinds the CLI only
	// inspects.
	ReadOnly bool

	// Remote returns the kind's API service, scoped as needed.
	Remote func(ctx context.Context, client *api.Client, scope Scope) (recon.Remote, error)

	// List returns every object of the kind visible in the scope.
	List func(ctx context.Context, client *api.Client, scope Scope) ([]map[string]interface{}, error)

	// Policy overrides the catalog policy for scopes that change it. When
	// nil the kind's catalog policy applies.
	Policy func(scope Scope) recon.Policy

	Meta meta.Meta
}

// Build returns the configured cli.Command tree for the kind.
func (b *ResourceCommandBuilder) Build() *cli.Command {
	commands := []*cli.Command{b.getCommand(), b.listCommand()}
	if !b.ReadOnly {
		commands = append([]*cli.Command{b.applyCommand()}, commands...)
		commands = append(commands, b.rmCommand())
	}

	return &cli.Command{
		Name:  b.Kind.String(),
		Usage: b.Usage,
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Commands: commands,
	}
}

func (b *ResourceCommandBuilder) scopeFlags() []cli.Flag {
	if b.ScopeFlags == nil {
		return nil
	}
	return b.ScopeFlags()
}

// apiFlags are the credential and endpoint flags every subcommand carries.
func (b *ResourceCommandBuilder) apiFlags() []cli.Flag {
	ns := b.Kind.String()
	return []cli.Flag{
		NewAPIKeyFlag(ns, b.Meta.Config.Source),
		NewEndpointFlag(ns, b.Meta.Config.Source),
		passphraseFlag,
		tldrFlag,
	}
}

func (b *ResourceCommandBuilder) applyCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "manifest file holding the declared state",
			Required: true,
		},
		checkFlag,
		diffFlag,
		snapshotFlag,
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored diff output",
			Value:   false,
		},
	}

	return &cli.Command{
		Name:      "apply",
		Usage:     "converge declared " + b.Kind.String() + " manifests",
		UsageText: fmt.Sprintf("ns1ctl %s apply -f manifest.yaml [options]", b.Kind),
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Flags: append(flags, b.apiFlags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: b.applyAction,
	}
}

func (b *ResourceCommandBuilder) getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "fetch one " + b.Kind.String() + " by name",
		UsageText: fmt.Sprintf("ns1ctl %s get NAME [options]", b.Kind),
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Flags: append(b.scopeFlags(), append(b.apiFlags(), NewGlobalFlags(b.Kind.String())...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: b.getAction,
	}
}

func (b *ResourceCommandBuilder) listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "list every " + b.Kind.String(),
		UsageText: fmt.Sprintf("ns1ctl %s list [options]", b.Kind),
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Flags: append(b.scopeFlags(), append(b.apiFlags(), NewGlobalFlags(b.Kind.String())...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: b.listAction,
	}
}

func (b *ResourceCommandBuilder) rmCommand() *cli.Command {
	flags := append(b.scopeFlags(),
		checkFlag,
		diffFlag,
		snapshotFlag,
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored diff output",
			Value:   false,
		},
	)

	return &cli.Command{
		Name:      "rm",
		Usage:     "remove one " + b.Kind.String() + " by name",
		UsageText: fmt.Sprintf("ns1ctl %s rm NAME [options]", b.Kind),
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Flags: append(flags, b.apiFlags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: b.rmAction,
	}
}

func (b *ResourceCommandBuilder) policy(scope Scope) recon.Policy {
	if b.Policy != nil {
		return b.Policy(scope)
	}
	return resource.PolicyFor(b.Kind)
}

// applyAction converges every manifest in the file. A manifest declaring a
// different kind than the command's is a hard error; mixed files belong to
// their own kind's apply.
func (b *ResourceCommandBuilder) applyAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, b.Kind.String()) {
		return nil
	}

	manifests, err := resource.Load(cmd.String("file"))
	if err != nil {
		return err
	}

	client, err := NewAPIClient(cmd, false)
	if err != nil {
		return err
	}

	var changed int
	for _, man := range manifests {
		kind, err := man.ResourceKind()
		if err != nil {
			return err
		}
		if kind != b.Kind {
			return fmt.Errorf("manifest %q declares a %s, not a %s", man.Name, kind, b.Kind)
		}

		scope := scopeFromManifest(man)
		remote, err := b.Remote(ctx, client, scope)
		if err != nil {
			return err
		}

		if cmd.Bool("snapshot") && !cmd.Bool("check") {
			if err := SnapshotBefore(ctx, remote, b.Kind, man.Name); err != nil {
				return err
			}
		}

		rec := recon.New(remote, b.policy(scope), recon.WithCheckMode(cmd.Bool("check")))

		var result recon.Result
		if man.DesiredState() == resource.StateAbsent {
			result, err = rec.Remove(ctx, man.Name)
		} else {
			result, err = rec.Ensure(ctx, man.Name, man.Spec)
		}
		if err != nil {
			return err
		}
		if result.Changed {
			changed++
		}

		if err := reportResult(cmd, b.Kind, man.Name, result); err != nil {
			return err
		}
	}

	log.Debugf("apply complete: kind=%s manifests=%d changed=%d", b.Kind, len(manifests), changed)
	return nil
}

func (b *ResourceCommandBuilder) getAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, b.Kind.String()) {
		return nil
	}

	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("%s get needs a name", b.Kind)
	}

	client, err := NewAPIClient(cmd, true)
	if err != nil {
		return err
	}

	remote, err := b.Remote(ctx, client, scopeFromFlags(cmd))
	if err != nil {
		return err
	}

	obj, err := remote.Fetch(ctx, name)
	if err != nil {
		return err
	}

	al := BuildAttrs(cmd, b.DefaultAttrs...)
	log.Debugf("attrs: %v", al)

	return EmitDataset([]map[string]interface{}{obj}, al, cmd)
}

func (b *ResourceCommandBuilder) listAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, b.Kind.String()) {
		return nil
	}

	client, err := NewAPIClient(cmd, true)
	if err != nil {
		return err
	}

	dataset, err := b.List(ctx, client, scopeFromFlags(cmd))
	if err != nil {
		return err
	}

	al := BuildAttrs(cmd, b.DefaultAttrs...)
	log.Debugf("attrs: %v", al)

	return EmitDataset(dataset, al, cmd)
}

func (b *ResourceCommandBuilder) rmAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, b.Kind.String()) {
		return nil
	}

	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("%s rm needs a name", b.Kind)
	}

	client, err := NewAPIClient(cmd, false)
	if err != nil {
		return err
	}

	scope := scopeFromFlags(cmd)
	remote, err := b.Remote(ctx, client, scope)
	if err != nil {
		return err
	}

	if cmd.Bool("snapshot") && !cmd.Bool("check") {
		if err := SnapshotBefore(ctx, remote, b.Kind, name); err != nil {
			return err
		}
	}

	rec := recon.New(remote, b.policy(scope), recon.WithCheckMode(cmd.Bool("check")))

	result, err := rec.Remove(ctx, name)
	if err != nil {
		return err
	}

	return reportResult(cmd, b.Kind, name, result)
}

// scopeFromManifest derives the addressing scope from a declared manifest.
func scopeFromManifest(m resource.Manifest) Scope {
	return Scope{
		Zone:       m.Zone,
		Type:       m.Type,
		Source:     m.Source,
		RecordMode: resource.RecordMode(m.RecordMode),
	}
}

// scopeFromFlags derives the addressing scope from command flags. Kinds
// without scope flags read empty strings, which is fine.
func scopeFromFlags(cmd *cli.Command) Scope {
	return Scope{
		Zone:   cmd.String("zone"),
		Type:   cmd.String("type"),
		Source: cmd.String("source"),
	}
}
