package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/giovan110109-blip/homePageuUni/client"
	"github.com/giovan110109-blip/homePageuUni/internal/config"
	"github.com/giovan110109-blip/homePageuUni/internal/localstate"
	"github.com/giovan110109-blip/homePageuUni/internal/logger"
	"github.com/giovan110109-blip/homePageuUni/platform"
	"github.com/giovan110109-blip/homePageuUni/platform/sqlite"
	"github.com/giovan110109-blip/homePageuUni/store"
)

var (
	baseURL string
	dataDir string
	debug   bool
)

const commandTimeout = 30 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app is the per-invocation wiring shared by sub-commands.
type app struct {
	log     zerolog.Logger
	storage *sqlite.Store
	client  *client.Client
	site    *store.SiteInfo
	user    *store.User
	theme   *store.Theme
	out     io.Writer
}

// Close releases the client and the state database. Safe to call twice.
func (a *app) Close() {
	if a.client != nil {
		_ = a.client.Close()
		a.client = nil
	}
	if a.storage != nil {
		_ = a.storage.Close()
		a.storage = nil
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	var a *app

	rootCmd := &cobra.Command{
		Use:           "homepage-cli",
		Short:         "Command-line client for the homepage backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if debug {
				level = zerolog.DebugLevel
			}
			l := logger.NewConsole(cmd.ErrOrStderr(), level)
			log.Logger = l

			built, err := newApp(cmd, l)
			if err != nil {
				return err
			}
			a = built
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend base URL (default from HOMEPAGE_BASE_URL / environment)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory of the local state database (default ~/.homepage-uni)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	get := func() *app { return a }
	rootCmd.AddCommand(newSiteInfoCmd(get))
	rootCmd.AddCommand(newMessagesCmd(get))
	rootCmd.AddCommand(newCommentsCmd(get))
	rootCmd.AddCommand(newPhotosCmd(get))
	rootCmd.AddCommand(newPhotoCmd(get))
	rootCmd.AddCommand(newLoginCmd(get))
	rootCmd.AddCommand(newMeCmd(get))
	rootCmd.AddCommand(newUpdateProfileCmd(get))
	rootCmd.AddCommand(newBindAccountCmd(get))
	rootCmd.AddCommand(newLogoutCmd(get))
	rootCmd.AddCommand(newQRCmd(get, "qr-scan", "Mark a desktop QR login as scanned", (*store.User).ScanQR))
	rootCmd.AddCommand(newQRCmd(get, "qr-confirm", "Confirm a scanned desktop QR login", (*store.User).ConfirmQR))
	rootCmd.AddCommand(newThemeCmd(get))

	return rootCmd
}

func newApp(cmd *cobra.Command, l zerolog.Logger) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.SetBaseURL(baseURL)
	}
	dir := dataDir
	if dir == "" {
		dir = cfg.DataDir
	}
	cfg.Debug = cfg.Debug || debug

	dbPath, err := localstate.DBPath(dir)
	if err != nil {
		return nil, err
	}
	st, err := sqlite.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open local state: %w", err)
	}

	ui := platform.NewConsoleUI(cmd.ErrOrStderr(), l)
	c, err := client.NewFromConfig(cfg, platform.Combine(st, ui), client.WithLogger(l))
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	l.Debug().Str("base_url", c.BaseURL()).Str("db_path", dbPath).Msg("client ready")

	return &app{
		log:     l,
		storage: st,
		client:  c,
		site:    store.NewSiteInfo(c, st, store.WithLogger(l)),
		user:    store.NewUser(c, ui, store.WithLogger(l)),
		theme:   store.NewTheme(st, ui, store.WithLogger(l)),
		out:     cmd.OutOrStdout(),
	}, nil
}

func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), commandTimeout)
}

func newSiteInfoCmd(get func() *app) *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "site-info",
		Short: "Show the site profile (cached for one hour)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			info, err := a.site.Fetch(ctx, refresh)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s - %s\n", info.Name, info.Title)
			if info.SiteTitle != "" {
				fmt.Fprintf(a.out, "Site: %s\n", info.SiteTitle)
			}
			if info.Bio != "" {
				fmt.Fprintf(a.out, "Bio: %s\n", info.Bio)
			}
			for _, l := range info.SocialLinks {
				fmt.Fprintf(a.out, "  %s: %s\n", l.Platform, l.URL)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the local cache")
	return cmd
}

func newMessagesCmd(get func() *app) *cobra.Command {
	var q client.MessagesQuery
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List guestbook messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			page, err := a.client.GetMessages(ctx, q)
			if err != nil {
				return err
			}
			for _, m := range page.Items {
				fmt.Fprintf(a.out, "%s\t%s\t%s\n", m.ID, m.Name, m.Content)
			}
			if page.Meta != nil {
				fmt.Fprintf(a.out, "Page %d/%d (%d total)\n", page.Meta.Page, page.Meta.TotalPages, page.Meta.Total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&q.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&q.PageSize, "page-size", 10, "Messages per page")
	cmd.Flags().StringVar(&q.Status, "status", "approved", "Message status")
	return cmd
}

func newCommentsCmd(get func() *app) *cobra.Command {
	var targetID string
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "List comments of a target",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			items, err := a.client.GetComments(ctx, targetID)
			if err != nil {
				return err
			}
			for _, c := range items {
				fmt.Fprintf(a.out, "%s\t%s\t%s\n", c.ID, c.Name, c.Content)
			}
			fmt.Fprintf(a.out, "%d comment(s)\n", len(items))
			return nil
		},
	}
	cmd.Flags().StringVar(&targetID, "target-id", "", "Target ID (required)")
	_ = cmd.MarkFlagRequired("target-id")
	return cmd
}

func newPhotosCmd(get func() *app) *cobra.Command {
	var q client.PhotosQuery
	cmd := &cobra.Command{
		Use:   "photos",
		Short: "List gallery photos",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			page, err := a.client.GetPhotos(ctx, q)
			if err != nil {
				return err
			}
			for _, p := range page.Photos {
				fmt.Fprintf(a.out, "%s\t%s\t%dx%d\n", p.ID, p.Title, p.Width, p.Height)
			}
			fmt.Fprintf(a.out, "Page %d/%d (%d total)\n", page.Pagination.Page, page.Pagination.Pages, page.Pagination.Total)
			return nil
		},
	}
	cmd.Flags().IntVar(&q.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&q.Limit, "limit", 20, "Photos per page")
	cmd.Flags().StringVar(&q.Visibility, "visibility", "public", "Visibility filter")
	return cmd
}

func newPhotoCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "photo <id>",
		Short: "Show one photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			p, err := a.client.GetPhotoDetail(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s\t%s\n%s\n", p.ID, p.Title, p.OriginalURL)
			return nil
		},
	}
}

func newLoginCmd(get func() *app) *cobra.Command {
	var code, nickname, avatar string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a platform login code",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			var profile *client.WechatProfile
			if nickname != "" || avatar != "" {
				profile = &client.WechatProfile{NickName: nickname, AvatarURL: avatar}
			}
			u, err := a.user.Login(ctx, code, profile)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Logged in as %s (%s)\n", displayName(u), u.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "Login code (required)")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Profile nickname to share")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Profile avatar URL to share")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func newMeCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			if err := a.user.Init(ctx); err != nil {
				return err
			}
			u := a.user.UserInfo()
			if u == nil {
				fmt.Fprintln(a.out, "Not logged in")
				return nil
			}
			fmt.Fprintf(a.out, "%s\t%s\t%s\n", u.ID, displayName(u), u.Role)
			return nil
		},
	}
}

func newUpdateProfileCmd(get func() *app) *cobra.Command {
	var nickname, avatar string
	cmd := &cobra.Command{
		Use:   "update-profile",
		Short: "Change nickname and avatar",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			u, err := a.user.UpdateProfile(ctx, client.WechatProfile{NickName: nickname, AvatarURL: avatar})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Profile updated: %s\n", displayName(u))
			return nil
		},
	}
	cmd.Flags().StringVar(&nickname, "nickname", "", "New nickname (required)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "New avatar URL")
	_ = cmd.MarkFlagRequired("nickname")
	return cmd
}

func newBindAccountCmd(get func() *app) *cobra.Command {
	var username, password, code string
	cmd := &cobra.Command{
		Use:   "bind-account",
		Short: "Bind a username/password account to a platform login",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			u, err := a.user.BindAccount(ctx, username, password, code)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Account bound: %s (%s)\n", displayName(u), u.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Account username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	cmd.Flags().StringVar(&code, "code", "", "Login code (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func newLogoutCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			if err := a.user.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func newQRCmd(get func() *app, use, short string, op func(*store.User, context.Context, string) (*client.QRStatus, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <qr-token>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			st, err := op(a.user, ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "QR login %s", st.Status)
			if st.Message != "" {
				fmt.Fprintf(a.out, ": %s", st.Message)
			}
			fmt.Fprintln(a.out)
			return nil
		},
	}
}

func newThemeCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			defer a.Close()
			ctx := cmd.Context()
			a.theme.Init(ctx)

			if len(args) == 1 {
				switch arg := strings.ToLower(args[0]); arg {
				case "toggle":
					a.theme.Toggle(ctx)
				default:
					if err := a.theme.SetTheme(ctx, store.ThemeMode(arg)); err != nil {
						return err
					}
				}
			}
			colors := a.theme.Colors()
			fmt.Fprintf(a.out, "Theme: %s (background %s, text %s, primary %s)\n",
				a.theme.Mode(), colors.BgPrimary, colors.TextPrimary, colors.Primary)
			return nil
		},
	}
}

func displayName(u *client.UserInfo) string {
	switch {
	case u.Nickname != "":
		return u.Nickname
	case u.WechatNickname != "":
		return u.WechatNickname
	default:
		return u.ID
	}
}
