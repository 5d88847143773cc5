package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
	"github.com/hardlevel/hardlevel-core/internal/core/services"
)

type ToggleCmd struct {
	Date string `arg:"" help:"Day to edit (YYYY-MM-DD, today, yesterday)."`
	Task string `arg:"" help:"Task: workout1, workout2, diet, water, reading, photo."`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	task, err := domain.ParseTaskID(c.Task)
	if err != nil {
		return err
	}

	res, err := ctx.Checklist.ToggleTask(context.Background(), date, task)
	if err != nil {
		return err
	}

	ctx.Logger.Info("task toggled", zap.String("date", date), zap.Stringer("task", task), zap.Int("completion", res.Completion))
	ctx.printf("%s", renderDay(res.Log, res.Completion))
	return nil
}

type ShowCmd struct {
	Date string `arg:"" optional:"" default:"today" help:"Day to show (YYYY-MM-DD, today, yesterday)."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	res, err := ctx.Checklist.GetDay(context.Background(), date)
	if err != nil {
		return err
	}

	ctx.printf("%s", renderDay(res.Log, res.Completion))
	return nil
}

type HeatmapCmd struct {
	End   string `help:"Last day of the grid." default:"today"`
	Weeks int    `help:"Number of week columns (1-104)." default:"11"`
}

func (c *HeatmapCmd) Run(ctx *Context) error {
	if err := domain.ValidateHeatmapWeeks(c.Weeks); err != nil {
		return err
	}
	end, err := ctx.ResolveDate(c.End)
	if err != nil {
		return err
	}
	endTime, _ := domain.ParseDate(end)

	hm, err := ctx.Heatmap.Build(context.Background(), domain.HeatmapInput{EndDate: endTime, Weeks: c.Weeks})
	if err != nil {
		return err
	}

	ctx.printf("%s", renderHeatmap(hm))
	return nil
}

type WeightCmd struct {
	Date  string  `arg:"" help:"Day to edit (YYYY-MM-DD, today, yesterday)."`
	Value float64 `arg:"" help:"Body weight."`
	Unit  string  `help:"Unit of the value." enum:"kg,lbs" default:"kg"`
}

func (c *WeightCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	unit, err := domain.ParseWeightUnit(c.Unit)
	if err != nil {
		return err
	}

	value := c.Value
	res, err := ctx.Checklist.SetMetrics(context.Background(), services.MetricsInput{
		Date:       date,
		Weight:     &value,
		WeightUnit: unit,
	})
	if err != nil {
		return err
	}

	ctx.printf("%s", renderDay(res.Log, res.Completion))
	return nil
}

type FastCmd struct {
	Date  string  `arg:"" help:"Day to edit (YYYY-MM-DD, today, yesterday)."`
	Hours float64 `arg:"" help:"Hours fasted."`
}

func (c *FastCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	hours := c.Hours
	res, err := ctx.Checklist.SetMetrics(context.Background(), services.MetricsInput{
		Date:         date,
		FastingHours: &hours,
	})
	if err != nil {
		return err
	}

	ctx.printf("%s", renderDay(res.Log, res.Completion))
	return nil
}

type ConvertCmd struct {
	Value float64 `arg:"" help:"Weight to convert."`
	From  string  `help:"Unit of the value." enum:"kg,lbs" required:""`
}

func (c *ConvertCmd) Run(ctx *Context) error {
	unit, err := domain.ParseWeightUnit(c.From)
	if err != nil {
		return err
	}

	if unit == domain.UnitLbs {
		ctx.printf("%.1f lbs = %.1f kg\n", c.Value, domain.LbsToKg(c.Value))
		return nil
	}
	ctx.printf("%.1f kg = %.1f lbs\n", c.Value, domain.KgToLbs(c.Value))
	return nil
}

// HashPasswordCmd prints the bcrypt hash for HARDLEVEL_OWNER_PASSWORD_HASH.
type HashPasswordCmd struct {
	Password string `arg:"" optional:"" help:"Password to hash. Read from stdin when omitted."`
}

func (c *HashPasswordCmd) Run(ctx *Context) error {
	password := c.Password
	if password == "" {
		scanner := bufio.NewScanner(ctx.In)
		if scanner.Scan() {
			password = strings.TrimSpace(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	hash, err := domain.HashPassword(password)
	if err != nil {
		return err
	}

	ctx.printf("%s\n", hash)
	return nil
}
