// internal/server/server.go
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"

	"wikigen/internal/builder"
	"wikigen/internal/metrics"
)

// BuildFunc rebuilds the whole site.
type BuildFunc func(builder.BuildOptions) error

// Config describes what the dev server watches and serves.
type Config struct {
	Port       int
	OutputDir  string
	WatchPaths []string // fragment directory and site.yaml
	Registry   *prom.Registry
}

const debounceDuration = 500 * time.Millisecond

// Run does a clean build, then serves cfg.OutputDir with live reload and
// rebuilds whenever a watched path changes. It returns when ctx is done.
func Run(ctx context.Context, cfg Config, buildFunc BuildFunc, opts builder.BuildOptions) error {
	opts.CleanDestination = true
	if err := buildFunc(opts); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	hub := newHub()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatches(watcher, cfg.WatchPaths); err != nil {
		return err
	}

	opts.CleanDestination = false
	go watchForChanges(ctx, watcher, hub, buildFunc, opts)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           newMux(hub, cfg.OutputDir, cfg.Registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	fmt.Printf("Serving site on http://localhost%s\n", srv.Addr)
	fmt.Println("Press Ctrl+C to stop")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// addWatches registers directories directly and files through their parent
// directory, which survives editors that save by rename.
func addWatches(watcher *fsnotify.Watcher, paths []string) error {
	watched := make(map[string]bool)
	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not stat path %s: %w", path, err)
		}

		dir := path
		if !info.IsDir() {
			dir = filepath.Dir(path)
		}
		dir = filepath.Clean(dir)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched[dir] = true
		slog.Info("Watching directory", "dir", dir)
	}
	return nil
}

// watchForChanges rebuilds once the watched paths have been quiet for
// debounceDuration, so the last edit of a burst is always picked up.
func watchForChanges(ctx context.Context, watcher *fsnotify.Watcher, hub *Hub, buildFunc BuildFunc, opts builder.BuildOptions) {
	debounce := time.NewTimer(debounceDuration)
	debounce.Stop()
	defer debounce.Stop()
	var changed string

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isRebuildEvent(event) {
				continue
			}
			changed = event.Name
			debounce.Reset(debounceDuration)
		case <-debounce.C:
			slog.Info("Change detected, rebuilding", "path", changed)
			if err := buildFunc(opts); err != nil {
				slog.Error("Error rebuilding site", "error", err)
				continue
			}
			slog.Info("Site rebuilt, triggering reload", "clients", hub.clientCount())
			hub.broadcastMessage(reloadMessage)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

func isRebuildEvent(event fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func newMux(hub *Hub, outputDir string, reg *prom.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})
	if reg != nil {
		mux.Handle("/metrics", metrics.Handler(reg))
	}
	mux.Handle("/", liveReloadWrapper(http.FileServer(http.Dir(outputDir))))
	return mux
}

// liveReloadWrapper disables caching and injects the reload script into
// successful text/html responses. Everything else streams through.
func liveReloadWrapper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		rw := &reloadWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		if err := rw.flush(); err != nil {
			slog.Debug("Error writing page", "path", r.URL.Path, "error", err)
		}
	})
}

// reloadWriter decides on the first WriteHeader or Write whether the
// response is a page. Pages are held in page until flush; other
// responses go straight to the client.
type reloadWriter struct {
	http.ResponseWriter
	status  int
	decided bool
	page    *bytes.Buffer
}

func (rw *reloadWriter) WriteHeader(status int) {
	if rw.decided {
		return
	}
	rw.decided = true
	rw.status = status
	if status == http.StatusOK && isHTMLContentType(rw.Header().Get("Content-Type")) {
		rw.page = new(bytes.Buffer)
		return
	}
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *reloadWriter) Write(b []byte) (int, error) {
	if !rw.decided {
		if rw.Header().Get("Content-Type") == "" {
			rw.Header().Set("Content-Type", http.DetectContentType(b))
		}
		rw.WriteHeader(http.StatusOK)
	}
	if rw.page != nil {
		return rw.page.Write(b)
	}
	return rw.ResponseWriter.Write(b)
}

// flush sends a held page with the reload script before </body>.
func (rw *reloadWriter) flush() error {
	if rw.page == nil {
		return nil
	}
	body := bytes.Replace(rw.page.Bytes(), []byte("</body>"), []byte(liveReloadScript+"</body>"), 1)
	rw.Header().Set("Content-Length", strconv.Itoa(len(body)))
	rw.ResponseWriter.WriteHeader(rw.status)
	_, err := rw.ResponseWriter.Write(body)
	return err
}

func isHTMLContentType(value string) bool {
	mediaType, _, err := mime.ParseMediaType(value)
	return err == nil && mediaType == "text/html"
}

const liveReloadScript = `
<script>
  (function() {
    let socket = new WebSocket("ws://" + window.location.host + "/ws");
    socket.onmessage = function(event) {
      if (event.data === "reload") {
        window.location.reload();
      }
    };
    socket.onerror = function() {
      console.error("Live reload connection error. Please restart 'wikigen serve'.");
    };
  })();
</script>
`
