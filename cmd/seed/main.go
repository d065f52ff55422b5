package main

import (
	"chat-edit/auth"
	"chat-edit/domain"
	"chat-edit/infrastructure/storage"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

const usage = `usage: seed [-db path] <command> [flags]

commands:
  user     -uid -username [-groups g1,g2]   create a user
  ungroup  -uid -group                      remove a user from a group
  ban      -uid [-off]                      ban or unban a user
  grant    -privilege [-uid | -group]       grant a global privilege
  revoke   -privilege -uid                  revoke a user privilege
  join     -room -uids 1,2,3                add users to a room
  leave    -room -uid                       remove a user from a room
  message  -room -uid -content [-system]    post a message, prints its id
  token    -uid [-secret] [-duration]       print a bearer token for uid`

var errUsage = errors.New("invalid usage")

// seed writes users, privileges, rooms and messages into a chat-edit database.
//
//	go run ./cmd/seed -db ./data user -uid 1 -username alice -groups registered-users
func main() {
	_ = godotenv.Load()
	code, err := run(context.Background(), os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
	}
	os.Exit(code)
}

type repositories struct {
	messages   *storage.MessageRepository
	users      *storage.UserRepository
	privileges *storage.PrivilegeRepository
	rooms      *storage.RoomRepository
}

func run(ctx context.Context, args []string, out io.Writer) (int, error) {
	global := flag.NewFlagSet("seed", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	dbPath := global.String("db", envOr("BADGER_FILEPATH", database.DefaultPath), "Path to badger DB")
	logLevel := global.String("log-level", "ERROR", "Log level")
	if err := global.Parse(args); err != nil || global.NArg() == 0 {
		return exitUsage, fmt.Errorf("%w: missing command", errUsage)
	}
	command, rest := global.Arg(0), global.Args()[1:]
	logger := logs.GetLoggerFromString(*logLevel)

	if command == "token" {
		return wrap(token(rest, out))
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() { _ = db.Close() }()

	repos, closeRepos, err := openRepositories(db, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer closeRepos()

	switch command {
	case "user":
		return wrap(createUser(ctx, repos, rest))
	case "ungroup":
		return wrap(ungroup(ctx, repos, rest))
	case "ban":
		return wrap(ban(ctx, repos, rest))
	case "grant":
		return wrap(grant(ctx, repos, rest))
	case "revoke":
		return wrap(revoke(ctx, repos, rest))
	case "join":
		return wrap(join(ctx, repos, rest))
	case "leave":
		return wrap(leave(ctx, repos, rest))
	case "message":
		return wrap(postMessage(ctx, repos, rest, out))
	default:
		return exitUsage, fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func openRepositories(db *badger.DB, logger *slog.Logger) (repositories, func(), error) {
	messages, err := storage.NewMessageRepository(db, logger)
	if err != nil {
		return repositories{}, nil, err
	}
	rooms, err := storage.NewRoomRepository(db, logger)
	if err != nil {
		_ = messages.Close()
		return repositories{}, nil, err
	}
	repos := repositories{
		messages:   messages,
		users:      storage.NewUserRepository(db),
		privileges: storage.NewPrivilegeRepository(db),
		rooms:      rooms,
	}
	return repos, func() {
		_ = messages.Close()
		_ = rooms.Close()
	}, nil
}

func wrap(err error) (int, error) {
	switch {
	case err == nil:
		return exitOK, nil
	case errors.Is(err, errUsage):
		return exitUsage, err
	default:
		return exitRuntime, err
	}
}

func createUser(ctx context.Context, repos repositories, args []string) error {
	fs := newFlagSet("user")
	uid := fs.String("uid", "", "User id")
	username := fs.String("username", "", "Display name")
	groups := fs.String("groups", "", "Comma separated groups")
	if err := parse(fs, args, uid, username); err != nil {
		return err
	}
	if err := repos.users.CreateUser(ctx, *uid, *username); err != nil {
		return err
	}
	for _, group := range splitList(*groups) {
		if err := repos.users.AddToGroup(ctx, group, *uid); err != nil {
			return err
		}
	}
	return nil
}

func ungroup(ctx context.Context, repos repositories, args []string) error {
	fs := newFlagSet("ungroup")
	uid := fs.String("uid", "", "User id")
	group := fs.String("group", "", "Group name")
	if err := parse(fs, args, uid, group); err != nil {
		return err
	}
	return repos.users.RemoveFromGroup(ctx, *group, *uid)
}

func ban(ctx context.Context, repos repositories, args []string) error {
	fs := newFlagSet("ban")
	uid := fs.String("uid", "", "User id")
	off := fs.Bool("off", false, "Lift the ban")
	if err := parse(fs, args, uid); err != nil {
		return err
	}
	return repos.users.SetBanned(ctx, *uid, !*off)
}

func grant(ctx context.Context, repos repositories, args []string) error {
	fs := newFlagSet("grant")
	privilege := fs.String("privilege", domain.PrivilegeChat, "Privilege name")
	uid := fs.String("uid", "", "User id")
	group := fs.String("group", "", "Group name")
	if err := parse(fs, args, privilege); err != nil {
		return err
	}
	switch {
	case *uid != "" && *group == "":
		return repos.privileges.Grant(ctx, *privilege, *uid)
	case *group != "" && *uid == "":
		return repos.privileges.GrantGroup(ctx, *privilege, *group)
	default:
		return fmt.Errorf("%w: grant needs exactly one of -uid or -group", errUsage)
	}
}

func revoke(ctx context.Context, repos repositories, args []string) error {
	fs := newFlagSet("revoke")
	privilege := fs.String("privilege", domain.PrivilegeChat, "Privilege name")
	uid := fs.String("uid", "", "User id")
	if err := parse(fs, args, privilege, uid); err != nil {
		return err
	}
	return repos.privileges.Revoke(ctx, *privilege, *uid)
}

func join(ctx context.Context, repos repositories, args []string) error {
	fs := newFlagSet("join")
	room := fs.Int64("room", 0, "Room id")
	uids := fs.String("uids", "", "Comma separated user ids")
	if err := parse(fs, args, uids); err != nil {
		return err
	}
	return repos.rooms.AddUsers(ctx, domain.RoomID(*room), splitList(*uids)...)
}

func leave(ctx context.Context, repos repositories, args []string) error {
	fs := newFlagSet("leave")
	room := fs.Int64("room", 0, "Room id")
	uid := fs.String("uid", "", "User id")
	if err := parse(fs, args, uid); err != nil {
		return err
	}
	return repos.rooms.RemoveUser(ctx, domain.RoomID(*room), *uid)
}

func postMessage(ctx context.Context, repos repositories, args []string, out io.Writer) error {
	fs := newFlagSet("message")
	room := fs.Int64("room", 0, "Room id")
	uid := fs.String("uid", "", "Author id")
	content := fs.String("content", "", "Message content")
	system := fs.Bool("system", false, "System message")
	if err := parse(fs, args, uid, content); err != nil {
		return err
	}
	mid, err := repos.messages.CreateMessage(ctx, domain.RoomID(*room), *uid, *content, *system, time.Now())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, mid)
	return err
}

func token(args []string, out io.Writer) error {
	fs := newFlagSet("token")
	uid := fs.String("uid", "", "User id")
	secret := fs.String("secret", os.Getenv("JWT_SECRET"), "Signing secret")
	duration := fs.Duration("duration", 24*time.Hour, "Token lifetime")
	if err := parse(fs, args, uid, secret); err != nil {
		return err
	}
	signed, err := auth.NewTokenIssuer(*secret, *duration).GenerateToken(*uid)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, signed)
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parse fails when a required string flag is left empty.
func parse(fs *flag.FlagSet, args []string, required ...*string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	for _, value := range required {
		if strings.TrimSpace(*value) == "" {
			return fmt.Errorf("%w: %s: missing required flag", errUsage, fs.Name())
		}
	}
	return nil
}

func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
