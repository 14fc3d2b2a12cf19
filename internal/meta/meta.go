// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/ns1ctl/ns1ctl/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries the raw CLI
// arguments, the loaded configuration, the run context, and the working
// directory the process started in.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}
