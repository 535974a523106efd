package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/modbundle/internal/assemble"
	"github.com/specialistvlad/modbundle/internal/buildorder"
	"github.com/specialistvlad/modbundle/internal/ctxlog"
)

// Run resolves the requested modules and writes either the bundle or, with
// OrderOnly, the module order to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	requested := a.config.Modules
	if a.config.All {
		requested = a.graph.Names()
	}

	order, err := buildorder.Plan(ctx, a.graph, requested)
	if err != nil {
		return err
	}
	a.logger.Info("Module order resolved.", "requested", len(requested), "modules", len(order), "order", order)

	if a.config.OrderOnly {
		for _, name := range order {
			if _, err := fmt.Fprintln(a.outW, name); err != nil {
				return fmt.Errorf("writing order: %w", err)
			}
		}
		return nil
	}

	if err := assemble.Assemble(ctx, a.outW, order, a.source, a.settings.HeaderLines); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
