package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-auth-gate/internal/adapter"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/models"
)

const (
	cmdCreate  = "create"
	cmdToken   = "token"
	cmdPing    = "ping"
	cmdSecret  = "secret"
	cmdWhoAmI  = "whoami"
	cmdVersion = "version"

	defaultServerAddress = "http://localhost:3001"
)

// AdapterFactory builds a ServerAdapter for the server at address.
type AdapterFactory func(address string) (adapter.ServerAdapter, error)

var _ Client = (*App)(nil)

// App dispatches userctl subcommands. create and token work on the users
// table through services; ping, secret and whoami call a running server.
type App struct {
	services   *service.Services
	newAdapter AdapterFactory
	buildInfo  models.AppBuildInfo

	out    io.Writer
	logger *logger.Logger
}

// NewApp constructs the userctl application. services may be nil when only
// commands that do not touch the database will run (see NeedsStorage).
func NewApp(services *service.Services, newAdapter AdapterFactory, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services:   services,
		newAdapter: newAdapter,
		buildInfo:  models.NewAppBuildInfo("", "", ""),
		out:        out,
		logger:     logger,
	}
}

// WithBuildInfo sets what the version command prints.
func (a *App) WithBuildInfo(info models.AppBuildInfo) *App {
	a.buildInfo = info
	return a
}

// NeedsStorage reports whether the command in args reads or writes the
// users table.
func NeedsStorage(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return args[0] == cmdCreate || args[0] == cmdToken
}

// SignsTokens reports whether the command in args issues a session token and
// therefore needs the server's sign key.
func SignsTokens(args []string) bool {
	return len(args) > 0 && args[0] == cmdToken
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s", ErrNoCommand, usage())
	}

	switch args[0] {
	case cmdCreate:
		return a.create(ctx, args[1:])
	case cmdToken:
		return a.token(ctx, args[1:])
	case cmdPing:
		return a.ping(ctx, args[1:])
	case cmdSecret:
		return a.secret(ctx, args[1:])
	case cmdWhoAmI:
		return a.whoami(ctx, args[1:])
	case cmdVersion:
		_, err := fmt.Fprint(a.out, a.buildInfo)
		return err
	default:
		return fmt.Errorf("%w %q: %s", ErrUnknownCommand, args[0], usage())
	}
}

func (a *App) create(ctx context.Context, args []string) error {
	email, password, err := parseCredentials(cmdCreate, args, a.out)
	if err != nil {
		return err
	}
	if a.services == nil {
		return ErrNoStorage
	}

	user, err := a.services.UserService.RegisterUser(ctx, email, password)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	a.logger.Info().Int64("id", user.UserID).Str("email", user.Email).Msg("user created")
	_, err = fmt.Fprintf(a.out, "%d\t%s\n", user.UserID, user.Email)
	return err
}

func (a *App) token(ctx context.Context, args []string) error {
	email, password, err := parseCredentials(cmdToken, args, a.out)
	if err != nil {
		return err
	}
	if a.services == nil {
		return ErrNoStorage
	}

	user, err := a.services.AuthService.Authenticate(ctx, email, password)
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	token, err := a.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	_, err = fmt.Fprintln(a.out, token.String())
	return err
}

func (a *App) ping(ctx context.Context, args []string) error {
	serverAdapter, server, err := a.connect(cmdPing, args, false)
	if err != nil {
		return err
	}

	pong, err := serverAdapter.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping %s: %w", server, err)
	}

	_, err = fmt.Fprintln(a.out, pong)
	return err
}

func (a *App) secret(ctx context.Context, args []string) error {
	serverAdapter, server, err := a.connect(cmdSecret, args, true)
	if err != nil {
		return err
	}

	answer, err := serverAdapter.Secret(ctx)
	if err != nil {
		return rejected(server, err)
	}

	_, err = fmt.Fprintln(a.out, answer)
	return err
}

func (a *App) whoami(ctx context.Context, args []string) error {
	serverAdapter, server, err := a.connect(cmdWhoAmI, args, true)
	if err != nil {
		return err
	}

	info, err := serverAdapter.UserInfo(ctx)
	if err != nil {
		return rejected(server, err)
	}

	_, err = fmt.Fprintln(a.out, info.Email)
	return err
}

// connect parses -server and -token for command and returns an adapter for
// that server. The token is required only when withToken is set.
func (a *App) connect(command string, args []string, withToken bool) (adapter.ServerAdapter, string, error) {
	fs := newFlagSet(command, a.out)
	server := fs.String("server", defaultServerAddress, "server base URL")
	var token *string
	if withToken {
		token = fs.String("token", "", "session token issued by `userctl token`")
	}
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if withToken && *token == "" {
		return nil, "", fmt.Errorf("%w: -token", ErrMissingArgument)
	}

	serverAdapter, err := a.newAdapter(*server)
	if err != nil {
		return nil, "", err
	}
	if withToken {
		serverAdapter.SetToken(*token)
	}

	return serverAdapter, *server, nil
}

func rejected(server string, err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("token rejected by %s: %w", server, err)
	}
	return err
}

func parseCredentials(command string, args []string, out io.Writer) (string, string, error) {
	fs := newFlagSet(command, out)
	email := fs.String("email", "", "user email")
	password := fs.String("password", "", "user password")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}

	var missing []string
	if *email == "" {
		missing = append(missing, "-email")
	}
	if *password == "" {
		missing = append(missing, "-password")
	}
	if len(missing) > 0 {
		return "", "", fmt.Errorf("%w: %s", ErrMissingArgument, strings.Join(missing, ", "))
	}

	return *email, *password, nil
}

func newFlagSet(command string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func usage() string {
	return "usage: userctl create|token -email E -password P | userctl ping [-server URL] | " +
		"userctl secret|whoami [-server URL] -token T | userctl version"
}
