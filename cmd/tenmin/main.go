package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/limbo/tenminute/internal/client"
)

type CLI struct {
	Server  string        `help:"API base URL." env:"TENMIN_SERVER" default:"http://localhost:8080"`
	Timeout time.Duration `help:"Timeout for the whole command." default:"15s"`
	Debug   bool          `help:"Log requests to stderr."`

	Journal JournalCmd `cmd:"" help:"Show the merged journal timeline." default:"1"`
	Streak  StreakCmd  `cmd:"" help:"Show the kept-promise streak."`
	Week    WeekCmd    `cmd:"" help:"Show promise stats for a week."`
	Suggest SuggestCmd `cmd:"" help:"Suggest a ten-minute activity."`
	Task    struct {
		List TaskListCmd `cmd:"" help:"List tasks." default:"1"`
		Add  TaskAddCmd  `cmd:"" help:"Add a task."`
		Done TaskDoneCmd `cmd:"" help:"Mark a task completed."`
		Rm   TaskRmCmd   `cmd:"" help:"Remove a task."`
	} `cmd:"" help:"Manage weekly tasks."`
}

// Context is handed to every command's Run method.
type Context struct {
	context.Context
	Client *client.Client
	Out    io.Writer
	Log    *log.Logger
}

func newParser(cli *CLI, out io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("tenmin"),
		kong.Description("Ten-minute transformation journal client"),
		kong.UsageOnError(),
		kong.Writers(out, out),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
	)
}

// run parses args and executes the selected command against the server.
func run(args []string, out io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli, out)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "tenmin",
		ReportTimestamp: true,
		Level:           log.WarnLevel,
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("using server", "url", cli.Server)

	ctx, cancel := context.WithTimeout(context.Background(), cli.Timeout)
	defer cancel()
	return kctx.Run(&Context{
		Context: ctx,
		Client:  client.New(cli.Server),
		Out:     out,
		Log:     logger,
	})
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
