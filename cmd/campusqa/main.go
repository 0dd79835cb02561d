package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campusqa/internal/bootstrap"
	authdto "campusqa/internal/modules/auth/dto"
	"campusqa/internal/platform/config"
	"campusqa/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "campusqa",
		Short:         "Campus course Q&A client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newTUICmd())
	root.AddCommand(newAskCmd())
	root.AddCommand(newChatCmd())
	root.AddCommand(newPrefsCmd())
	root.AddCommand(newLoginCmd())
	root.AddCommand(newLogoutCmd())
	root.AddCommand(newPDFCmd())
	return root
}

func loadApp() (*bootstrap.App, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogPath())
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return app, logger, nil
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the campusqa terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newAskCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask one question and print the answer with its sources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := context.Background()
			id := sessionID
			if id == "" {
				sess, err := app.SessionCLI.Create(ctx, "")
				if err != nil {
					return err
				}
				id = sess.ID
			}

			out, err := app.AskCLI.Submit(ctx, id, strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message.Content)
			for i, src := range out.Message.Sources {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s p.%d (%.0f%%)\n",
					i+1, src.Title, src.PageNumber, src.Relevance*100)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "existing chat session id")
	return cmd
}

func newChatCmd() *cobra.Command {
	chat := &cobra.Command{Use: "chat", Short: "Chat session commands"}

	chat.AddCommand(&cobra.Command{
		Use:   "new [subject]",
		Short: "Create a chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			subject := ""
			if len(args) > 0 {
				subject = args[0]
			}
			sess, err := app.SessionCLI.Create(context.Background(), subject)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sess.ID, sess.Subject)
			return nil
		},
	})

	chat.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List chat sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			sessions, err := app.SessionCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no chats")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-36s  %d messages\n", s.ID, s.Subject, s.MessageCount)
			}
			return nil
		},
	})

	chat.AddCommand(&cobra.Command{
		Use:   "log <session-id>",
		Short: "Print a session's transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			msgs, err := app.SessionCLI.Messages(context.Background(), args[0])
			if err != nil {
				return err
			}
			for _, msg := range msgs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n",
					msg.Timestamp.Format("2006-01-02 15:04"), msg.Role, msg.Content)
			}
			return nil
		},
	})

	return chat
}

func newPrefsCmd() *cobra.Command {
	prefs := &cobra.Command{Use: "prefs", Short: "Preference commands"}

	prefs.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print current preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			out, err := app.PrefsCLI.Get(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "course:   %s\n", out.Course)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "semester: %s (%s)\n", out.SemesterNumber, out.FullSemester)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme:    %s\n", out.Theme)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "token:    %v\n", out.HasToken)
			return nil
		},
	})

	prefs.AddCommand(&cobra.Command{
		Use:   "set <course|semester|theme> <value>",
		Short: "Set one preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			ctx := context.Background()
			switch args[0] {
			case "course":
				return app.PrefsCLI.SetCourse(ctx, args[1])
			case "semester":
				return app.PrefsCLI.SetSemesterNumber(ctx, args[1])
			case "theme":
				return app.PrefsCLI.SetTheme(ctx, args[1])
			default:
				return fmt.Errorf("unknown preference %q", args[0])
			}
		},
	})

	return prefs
}

func newLoginCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in via the campus OAuth flow",
		Long:  "Prints the login URL; after authenticating, pass the returned token with --token.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if token == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "open in your browser: %s\n", app.AuthCLI.LoginURL())
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "then run: campusqa login --token <token>")
				return nil
			}
			out, err := app.AuthCLI.Callback(context.Background(), token)
			if err != nil {
				return err
			}
			if out.Route != authdto.RouteHome {
				return fmt.Errorf("login failed: no token received")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged in")
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "token from the OAuth callback")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if err := app.AuthCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newPDFCmd() *cobra.Command {
	pdf := &cobra.Command{Use: "pdf", Short: "Course document commands"}

	var page int
	readCmd := &cobra.Command{
		Use:   "read <file-name>",
		Short: "Print one page of a course PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			out, err := app.ViewerCLI.Page(context.Background(), args[0], page)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s p.%d/%d\n\n%s\n", out.FileName, out.Number, out.PageCount, out.Text)
			return nil
		},
	}
	readCmd.Flags().IntVar(&page, "page", 1, "page number")

	var destDir string
	downloadCmd := &cobra.Command{
		Use:   "download <file-name>",
		Short: "Download a course PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			dir := destDir
			if dir == "" {
				dir = "."
			}
			path, err := app.ViewerCLI.Download(context.Background(), args[0], dir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "saved", path)
			return nil
		},
	}
	downloadCmd.Flags().StringVar(&destDir, "dest", "", "destination directory (default: current)")

	fetchCmd := &cobra.Command{
		Use:   "fetch <file-name>",
		Short: "Pull a course PDF into the local cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, logger, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			doc, err := app.ViewerCLI.Open(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s cached at %s (%d pages)\n", doc.FileName, doc.Path, doc.PageCount)
			return nil
		},
	}

	pdf.AddCommand(readCmd, downloadCmd, fetchCmd)
	return pdf
}
