// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"zlendo/internal/cache"
	"zlendo/internal/metrics"
)

// slugKinds maps each slugs argument to the listing it prints.
var slugKinds = map[string]func(context.Context, services) []string{
	"posts":          func(ctx context.Context, s services) []string { return s.Blog.GetAllPostSlugs(ctx) },
	"categories":     func(ctx context.Context, s services) []string { return s.Blog.GetAllCategorySlugs(ctx) },
	"tags":           func(ctx context.Context, s services) []string { return s.Blog.GetAllTagSlugs(ctx) },
	"docs":           func(ctx context.Context, s services) []string { return s.Help.GetAllDocSlugs(ctx) },
	"doc-categories": func(ctx context.Context, s services) []string { return s.Help.GetAllDocCategorySlugs(ctx) },
}

func newSlugsCommand(app AppContext, st *state) *cobra.Command {
	return &cobra.Command{
		Use:       "slugs <posts|categories|tags|docs|doc-categories>",
		Short:     "Print every slug of one content kind, for static path generation",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"posts", "categories", "tags", "docs", "doc-categories"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, ok := slugKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown slug kind %q", args[0])
			}
			svc := newServices(st.cfg, cache.Nop{}, metrics.Nop{})
			return writeSlugs(app.Stdout, list(cmd.Context(), svc), st.global.JSON)
		},
	}
}

func writeSlugs(w io.Writer, slugs []string, asJSON bool) error {
	if asJSON {
		if slugs == nil {
			slugs = []string{}
		}
		return json.NewEncoder(w).Encode(slugs)
	}
	for _, s := range slugs {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
