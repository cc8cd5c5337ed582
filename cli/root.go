package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/electr1fy0/noteboard/config"
	"github.com/electr1fy0/noteboard/model"
	"github.com/electr1fy0/noteboard/notes"
	"github.com/electr1fy0/noteboard/storage"
)

// Version is stamped at build time.
var Version = "dev"

type app struct {
	cfgFile  string
	dataPath string
	verbose  bool

	cfg     *config.Config
	fs      afero.Fs
	logger  *slog.Logger
	logFile io.Closer
	in      *bufio.Reader
}

// NewRootCmd wires every subcommand around one shared app.
func NewRootCmd() *cobra.Command {
	return newApp().command()
}

func newApp() *app {
	return &app{fs: afero.NewOsFs()}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "noteboard",
		Short:         "Create, edit, delete and search short notes",
		Long:          "noteboard keeps a flat list of plain-text notes in a local key-value file.\nRun without a subcommand to open the board.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.openBoard(cmd)
			if err != nil {
				return err
			}
			return model.Run(board, model.Options{Editor: a.cfg.Editor, Fs: a.fs})
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default "+config.DefaultFile()+")")
	root.PersistentFlags().StringVar(&a.dataPath, "data", "", "notes file, overrides data_path")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newExportCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	a := newApp()
	if err := a.run(a.command()); err != nil {
		// validation failures were already shown by the board's notifier
		if !errors.Is(err, notes.ErrFieldsRequired) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// run executes root and releases what setup opened. Cobra skips the
// post-run hooks when a command fails, so this cannot live there alone.
func (a *app) run(root *cobra.Command) error {
	err := root.Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.dataPath != "" {
		cfg.DataPath = a.dataPath
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	// the board owns the terminal, so logs only go to a file unless asked for
	var out io.Writer = io.Discard
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		out = f
	case a.verbose:
		out = os.Stderr
	}
	a.logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// openBoard loads the board from the configured file.
func (a *app) openBoard(cmd *cobra.Command) (*notes.Board, error) {
	passphrase := a.cfg.Passphrase
	if a.cfg.Encrypt && passphrase == "" {
		p, err := a.readPassphrase(cmd)
		if err != nil {
			return nil, err
		}
		passphrase = p
	}

	store := storage.New(
		storage.NewFileKV(a.fs, a.cfg.DataPath),
		storage.WithKey(a.cfg.StorageKey),
		storage.WithPassphrase(passphrase),
		storage.WithLogger(a.logger),
	)
	board := notes.NewBoard(store,
		notes.WithLogger(a.logger),
		notes.WithNotifier(notes.NotifyFunc(func(msg string) {
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		})),
	)
	if store.Sealed() {
		return nil, storage.ErrSealed
	}
	a.logger.Debug("board opened", "path", a.cfg.DataPath, "notes", len(board.Notes()))
	return board, nil
}

func (a *app) readPassphrase(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Passphrase: ")
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read passphrase: %w", err)
		}
		return string(b), nil
	}
	return a.readLine(cmd)
}

// readLine reads one line from the command's input. The reader is shared so
// successive prompts do not lose buffered input.
func (a *app) readLine(cmd *cobra.Command) (string, error) {
	if a.in == nil {
		a.in = bufio.NewReader(cmd.InOrStdin())
	}
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirmer prompts on stderr, like the passphrase, so piped output stays
// clean. It accepts y or yes.
func (a *app) confirmer(cmd *cobra.Command) notes.Confirmer {
	return notes.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N] ", prompt)
		answer, err := a.readLine(cmd)
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		}
		return false
	})
}
