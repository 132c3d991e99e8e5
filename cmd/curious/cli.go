package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ryanve/curious/internal/config"
	"github.com/ryanve/curious/internal/valuefmt"
	"github.com/ryanve/curious/pkg/typekit"
	uuid "github.com/satori/go.uuid"
	"go.llib.dev/frameless/pkg/logging"
)

const (
	exitTrue  = 0
	exitFalse = 1
	exitUsage = 2
)

type CLI struct {
	Format   string `help:"Input format (${enum})." short:"f" enum:"${formats}" default:"${format}"`
	LogLevel string `help:"Log level (${enum})." enum:"debug,info,warn,error,fatal" default:"${logLevel}"`

	Is    IsCmd    `cmd:"" help:"Test a value against a kind, a class tag, null or NaN."`
	Equal EqualCmd `cmd:"" help:"Compare two values deeply."`
	Empty EmptyCmd `cmd:"" help:"Test whether a value is empty."`
	Kind  KindCmd  `cmd:"" help:"Print the kind and the class tag of a value."`
	Match MatchCmd `cmd:"" help:"Test values with a predicate built from a descriptor."`
}

type IsCmd struct {
	Value      string `arg:"" help:"Value to classify."`
	Descriptor string `arg:"" help:"Kind, class tag, null or NaN."`
}

func (cmd *IsCmd) Run(env *runEnv) error {
	v, err := env.decode(cmd.Value)
	if err != nil {
		return err
	}
	return env.report(env.kernel.Is(v, cmd.Descriptor))
}

type EqualCmd struct {
	A string `arg:"" help:"First value."`
	B string `arg:"" help:"Second value, only its properties shared with the first one are compared."`
}

func (cmd *EqualCmd) Run(env *runEnv) error {
	a, err := env.decode(cmd.A)
	if err != nil {
		return err
	}
	b, err := env.decode(cmd.B)
	if err != nil {
		return err
	}
	eq, err := env.kernel.EqualE(a, b)
	if err != nil {
		return err
	}
	return env.report(eq)
}

type EmptyCmd struct {
	Value string `arg:"" help:"Value to test."`
}

func (cmd *EmptyCmd) Run(env *runEnv) error {
	v, err := env.decode(cmd.Value)
	if err != nil {
		return err
	}
	return env.report(env.kernel.IsEmpty(v))
}

type KindCmd struct {
	Value string `arg:"" help:"Value to describe."`
}

func (cmd *KindCmd) Run(env *runEnv) error {
	v, err := env.decode(cmd.Value)
	if err != nil {
		return err
	}
	env.result = true
	_, err = fmt.Fprintln(env.out, typekit.KindOf(v), typekit.TagOf(v))
	return err
}

type MatchCmd struct {
	Descriptor string   `arg:"" help:"Kind or class tag, or a literal value with --literal."`
	Values     []string `arg:"" help:"Values to test."`
	Invert     bool     `help:"Invert the predicate."`
	Literal    bool     `help:"Decode the descriptor and match values identical to it."`
}

func (cmd *MatchCmd) Run(env *runEnv) error {
	var descriptor any = cmd.Descriptor
	if cmd.Literal {
		d, err := env.decode(cmd.Descriptor)
		if err != nil {
			return err
		}
		descriptor = typekit.Literal{Value: d}
	}
	var (
		match = env.kernel.Automate(descriptor, cmd.Invert)
		all   = true
	)
	env.logger.Debug(env.ctx, "match",
		logging.Field("descriptor", typekit.DescriptorOf(descriptor).String()),
		logging.Field("invert", cmd.Invert))
	for _, text := range cmd.Values {
		v, err := env.decode(text)
		if err != nil {
			return err
		}
		ok := match(v)
		all = all && ok
		if _, err := fmt.Fprintln(env.out, ok); err != nil {
			return err
		}
	}
	env.result = all
	return nil
}

type runEnv struct {
	ctx    context.Context
	kernel *typekit.Kernel
	format valuefmt.Format
	out    io.Writer
	logger *logging.Logger
	result bool
}

func (env *runEnv) decode(text string) (any, error) {
	v, err := valuefmt.Decode(env.format, text)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", text, err)
	}
	return v, nil
}

func (env *runEnv) report(ok bool) error {
	env.result = ok
	_, err := fmt.Fprintln(env.out, ok)
	return err
}

type exitCode int

// Main runs the curious command and returns its exit code:
// 0 when the answer is true, 1 when it is false and 2 on usage or input errors.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	ctx = logging.ContextWith(ctx, logging.Field("invocation_id", uuid.NewV4().String()))
	l := &logging.Logger{Out: stderr}

	cfg, err := config.Load()
	if err != nil {
		l.Error(ctx, "invalid environment configuration", logging.ErrField(err))
		return exitUsage
	}
	l.Level = cfg.Level()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("curious"),
		kong.Description("Classify and compare values from the command line."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if code != 0 {
				code = exitUsage
			}
			panic(exitCode(code))
		}),
		kong.Vars{
			"formats":  formatNames(),
			"format":   cfg.Format,
			"logLevel": cfg.LogLevel,
		},
		kong.UsageOnError(),
	)
	if err != nil {
		l.Error(ctx, "command line definition", logging.ErrField(err))
		return exitUsage
	}

	kctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	l.Level = logging.Level(cli.LogLevel)
	format, err := valuefmt.ParseFormat(cli.Format)
	parser.FatalIfErrorf(err)

	env := &runEnv{
		ctx:    ctx,
		kernel: typekit.New(typekit.WithLogger(l)),
		format: format,
		out:    stdout,
		logger: l,
	}
	l.Debug(ctx, "running command",
		logging.Field("command", kctx.Command()),
		logging.Field("format", string(format)))

	if err := kctx.Run(env); err != nil {
		l.Debug(ctx, "command failed", logging.ErrField(err))
		parser.FatalIfErrorf(err)
	}
	if !env.result {
		return exitFalse
	}
	return exitTrue
}

func formatNames() string {
	names := make([]string, 0, len(valuefmt.Formats))
	for _, f := range valuefmt.Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ",")
}
