// Command hajzi-admin runs the console client headless: it signs in with the
// persisted token (or credentials passed via flags), prints the dashboard
// snapshot, and tails live events until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajzi/admin-console/config"
	"github.com/hajzi/admin-console/internal/bootstrap"
	"github.com/hajzi/admin-console/internal/domain/model"
	apperrors "github.com/hajzi/admin-console/internal/errors"
	"github.com/hajzi/admin-console/internal/guard"
	"github.com/hajzi/admin-console/internal/nav"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	email := flag.String("email", "", "sign in with this email instead of the persisted token")
	password := flag.String("password", "", "password for -email")
	tail := flag.Bool("tail", false, "stay connected and print live events until interrupted")
	flag.Parse()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.InitLogger(cfg.IsDev)

	if err := run(ctx, cfg, logger, runOptions{email: *email, password: *password, tail: *tail}); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

type runOptions struct {
	email    string
	password string
	tail     bool
}

func run(ctx context.Context, cfg config.AppConfig, logger *slog.Logger, opts runOptions) error {
	rt, err := bootstrap.NewRuntime(cfg, logger)
	if err != nil {
		return err
	}
	defer rt.Shutdown()

	if opts.email != "" {
		if err := rt.Sessions.Login(ctx, opts.email, opts.password); err != nil {
			return fmt.Errorf("sign in: %s", apperrors.UserMessage(err))
		}
	}
	if err := rt.Sessions.Bootstrap(ctx); err != nil {
		logger.WarnContext(ctx, "session bootstrap failed", "error", err)
	}

	switch rt.Guard.Evaluate() {
	case guard.DecisionAuthenticated:
	case guard.DecisionUnauthenticated:
		return fmt.Errorf("not signed in; pass -email and -password")
	default:
		return fmt.Errorf("session state never resolved")
	}

	sess, _ := rt.Sessions.Current()
	logger.InfoContext(ctx, "signed in", "name", sess.Name, "role", string(sess.Role))
	printMenu(rt)

	if err := printOverview(ctx, rt); err != nil {
		logger.WarnContext(ctx, "dashboard snapshot unavailable", "error", err)
	}

	if !opts.tail {
		return nil
	}
	return tailEvents(ctx, rt, logger)
}

func printMenu(rt *bootstrap.Runtime) {
	sess, ok := rt.Sessions.Current()
	if !ok {
		return
	}
	fmt.Println("screens:")
	for _, item := range nav.VisibleItems(nav.DefaultItems(), &sess) {
		fmt.Printf("  %-16s %s\n", item.Path, item.Label)
	}
}

func printOverview(ctx context.Context, rt *bootstrap.Runtime) error {
	overview, err := rt.Services.Stats.Overview(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("users: %d  photographers: %d  bookings: %d  revenue: %.2f  pending verifications: %d\n",
		overview.Dashboard.TotalUsers,
		overview.Dashboard.TotalPhotographers,
		overview.Dashboard.TotalBookings,
		overview.Dashboard.TotalRevenue,
		overview.Dashboard.PendingVerifications)
	fmt.Printf("active subscriptions: %d  monthly revenue: %.2f\n",
		overview.Subscriptions.ActiveSubscriptions,
		overview.Subscriptions.MonthlyRevenue)
	return nil
}

func tailEvents(ctx context.Context, rt *bootstrap.Runtime, logger *slog.Logger) error {
	for _, kind := range []model.EventKind{model.EventNewBooking, model.EventNewUser} {
		kind := kind
		unsub := rt.Bridge.Subscribe(kind, func(n model.Notification) {
			fmt.Printf("%s %s\n", kind, string(n.Payload))
		})
		defer unsub()
	}

	logger.InfoContext(ctx, "tailing live events", "state", string(rt.Bridge.State()))
	<-ctx.Done()
	return nil
}
