package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fivemoreminix/glslmode/ui"
	"github.com/fivemoreminix/glslmode/ui/buffer"
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func newViewCmd(flags *globalFlags) *cobra.Command {
	var line int

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Show a GLSL file highlighted in the terminal",
		Long: `Shows FILE read-only with GLSL highlighting. The status bar tells the
category of the word under the cursor. Ctrl+D copies the reference page URL
of the builtin under the cursor. The file is reloaded when it changes on
disk. Ctrl+Q or Esc quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			classifier, err := cfg.Classifier()
			if err != nil {
				return err
			}
			colorscheme, err := cfg.Colorscheme()
			if err != nil {
				return err
			}

			path := args[0]
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("error opening file %s: %w", path, err)
			}
			if !IsGLSLFile(path, content) {
				slog.Warn("File does not look like GLSL", slog.String("path", path))
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			// The screen owns the terminal until Fini.
			logger := slog.Default()
			slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
			defer slog.SetDefault(logger)

			v := newViewer(screen, path, content, buffer.NewGLSL(classifier), &colorscheme, NewClipboard())
			v.view.GotoLine(line)
			if stop, err := v.watch(); err != nil {
				v.view.SetMessage("not watching for changes: "+err.Error(), ui.StatusError)
			} else {
				defer stop()
			}
			v.run()
			return nil
		},
	}

	cmd.Flags().IntVarP(&line, "line", "l", 1, "Line to place the cursor on")
	return cmd
}

// reloadEvent carries the new file contents, or why they could not be read.
type reloadEvent struct {
	content []byte
	err     error
}

// viewer lays out the text view above the status bar and runs the event loop.
type viewer struct {
	screen tcell.Screen
	path   string
	lang   *buffer.Language
	view   *ui.TextView
	status *ui.StatusBar
}

func newViewer(screen tcell.Screen, path string, content []byte, lang *buffer.Language, colorscheme *buffer.Colorscheme, clip *Clipboard) *viewer {
	theme := &ui.DefaultTheme
	v := &viewer{
		screen: screen,
		path:   path,
		lang:   lang,
		view:   ui.NewTextView(screen, path, content, lang, colorscheme, theme),
		status: ui.NewStatusBar(theme),
	}
	v.view.CopyText = clip.Write
	v.view.SetFocused(true)
	v.layout()
	return v
}

func (v *viewer) layout() {
	w, h := v.screen.Size()
	v.view.SetPos(0, 0)
	v.view.SetSize(w, max(h-1, 0))
	v.status.SetPos(0, h-1)
	v.status.SetSize(w, 1)
	v.view.ScrollToCursor()
}

func (v *viewer) draw() {
	v.view.Draw(v.screen)
	v.status.Message, v.status.Kind = v.view.Status()
	v.status.Right = fmt.Sprintf("%s  %s  %s", filepath.Base(v.path), v.lang.Name, v.view.Position())
	v.status.Draw(v.screen)
	v.screen.Show()
}

// run handles events until the user quits or the screen is finalized.
func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.layout()
			v.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyEscape {
				return
			}
			v.view.HandleEvent(ev)
		case *tcell.EventInterrupt:
			if r, ok := ev.Data().(reloadEvent); ok {
				v.reload(r)
			}
		}
	}
}

func (v *viewer) reload(r reloadEvent) {
	if r.err != nil {
		v.view.SetMessage("reload: "+r.err.Error(), ui.StatusError)
		return
	}
	v.view.SetContents(r.content)
	v.view.SetMessage("reloaded "+filepath.Base(v.path), ui.StatusInfo)
}

// watch posts a reloadEvent whenever the file is written. The directory is
// watched because many editors save by replacing the file.
func (v *viewer) watch() (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(v.path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	target := filepath.Clean(v.path)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				content, err := os.ReadFile(v.path)
				_ = v.screen.PostEvent(tcell.NewEventInterrupt(reloadEvent{content: content, err: err}))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				_ = v.screen.PostEvent(tcell.NewEventInterrupt(reloadEvent{err: err}))
			}
		}
	}()
	return func() { _ = watcher.Close() }, nil
}
