// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"zlendo/internal/cache"
)

// errNoSharedCache is returned when there is no Valkey to clear. The
// in-memory cache belongs to the serving process and expires on its own.
var errNoSharedCache = errors.New("no shared cache configured: VALKEY_HOST is empty")

// clearer drops every cached upstream response.
type clearer interface {
	Clear(ctx context.Context) (int, error)
}

func newCacheCommand(app AppContext, st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the shared upstream response cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached WordPress response so the next request refetches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !st.cfg.UsesValkey() {
				return errNoSharedCache
			}
			client, err := cache.ConnectValkey(st.cfg.ValkeyHost, st.cfg.ValkeyPort, st.cfg.ValkeyPassword)
			if err != nil {
				return err
			}
			defer client.Close()
			return clearCache(cmd.Context(), cache.NewValkeyStore(client), app.Stdout, st.global.JSON)
		},
	})
	return cmd
}

func clearCache(ctx context.Context, c clearer, w io.Writer, asJSON bool) error {
	n, err := c.Clear(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		return json.NewEncoder(w).Encode(map[string]int{"deleted": n})
	}
	_, err = fmt.Fprintf(w, "cleared %d cached responses\n", n)
	return err
}
