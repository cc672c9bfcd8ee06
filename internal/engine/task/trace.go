// Released under an MIT license. See LICENSE.

package task

import (
	"log/slog"

	"github.com/michaelmacinnis/lum/internal/common/printer"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
)

// The trace method records an evaluator event when tracing is enabled.
func (t *task) trace(event string, c *cell.T, attrs ...any) {
	if !t.tracing {
		return
	}

	if c != nil {
		attrs = append(attrs, slog.String("cell", printer.Literal(c)))
	}

	attrs = append(attrs,
		slog.Int("locals", t.locals.Len()),
		slog.Int("results", t.results.Len()),
	)

	t.log.Debug(event, attrs...)
}
