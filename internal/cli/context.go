package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
	"github.com/hardlevel/hardlevel-core/internal/core/services"
)

// Context is handed to every command's Run method by kong.
type Context struct {
	Checklist *services.ChecklistService
	Heatmap   *services.HeatmapService
	Out       io.Writer
	In        io.Reader
	Logger    *zap.Logger
	Now       func() time.Time
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// ResolveDate accepts "today", "yesterday" or a YYYY-MM-DD date.
func (c *Context) ResolveDate(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return domain.FormatDate(c.now()), nil
	case "yesterday":
		return domain.FormatDate(c.now().AddDate(0, 0, -1)), nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return "", err
	}
	return s, nil
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}
