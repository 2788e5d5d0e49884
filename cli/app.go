// Package cli contains the rrtplan command line interface.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

// Flags.
const (
	flagDebug    = "debug"
	flagLogLevel = "log-level"
	flagSeed    = "seed"
	flagMaxIter = "max-iter"
	flagOut     = "out"
	flagRuns    = "runs"
	flagSpace   = "space"
)

var app = &cli.App{
	Name:            "rrtplan",
	Usage:           "plan paths with RRT and bidirectional RRT",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    flagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Value: "info",
			Usage: "minimum level to log: debug, info, warn or error",
		},
	},
	Commands: []*cli.Command{
		{
			Name:      "plan",
			Usage:     "solve the problem described by a config file once",
			ArgsUsage: "<config.json>",
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:  flagSeed,
					Usage: "override the seed from the config",
				},
				&cli.IntFlag{
					Name:  flagMaxIter,
					Usage: "override the planner's max_iter option",
				},
				&cli.StringFlag{
					Name:      flagOut,
					Aliases:   []string{"o"},
					TakesFile: true,
					Usage:     "write a rendering of the trees to `FILE`",
				},
			},
			Action: PlanAction,
		},
		{
			Name:      "bench",
			Usage:     "solve the problem repeatedly with consecutive seeds and summarize the runs",
			ArgsUsage: "<config.json>",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  flagRuns,
					Value: 10,
					Usage: "number of runs",
				},
				&cli.IntFlag{
					Name:  flagMaxIter,
					Usage: "override the planner's max_iter option",
				},
			},
			Action: BenchAction,
		},
		{
			Name:  "schema",
			Usage: "print the JSON schema of config files",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagSpace,
					Usage: "print the attribute schema of a space type instead",
				},
			},
			Action: SchemaAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
