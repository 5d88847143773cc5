package cli

import "strings"

// CLI is the kong command tree of the hardlevel binary.
type CLI struct {
	DB    string `help:"SQLite database file." type:"path" default:"~/.hardlevel/hardlevel.db" env:"HARDLEVEL_SQLITE_PATH"`
	Debug bool   `help:"Also print logs to stdout."`

	Toggle       ToggleCmd       `cmd:"" help:"Toggle one task of a day."`
	Show         ShowCmd         `cmd:"" help:"Show a day's checklist." default:"withargs"`
	Heatmap      HeatmapCmd      `cmd:"" help:"Show the completion heatmap."`
	Weight       WeightCmd       `cmd:"" help:"Record body weight for a day."`
	Fast         FastCmd         `cmd:"" help:"Record fasting hours for a day."`
	Convert      ConvertCmd      `cmd:"" help:"Convert a weight between kg and lbs."`
	HashPassword HashPasswordCmd `cmd:"" help:"Print a bcrypt hash for the API owner password."`
}

// NeedsStore reports whether the selected command reads or writes day logs.
func NeedsStore(command string) bool {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "convert", "hash-password":
		return false
	default:
		return true
	}
}
