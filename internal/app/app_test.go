package app_test

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fsadapter "go.trai.ch/scriptmerge/internal/adapters/fs"
	"go.trai.ch/scriptmerge/internal/adapters/manifest"
	"go.trai.ch/scriptmerge/internal/app"
	"go.trai.ch/scriptmerge/internal/core/domain"
	"go.trai.ch/scriptmerge/internal/core/ports"
	"go.trai.ch/scriptmerge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const counterSource = "<template>\n  <p>{{ count }}</p>\n</template>\n\n<script setup>\nconst label = 'n'\n</script>\n"

const counterMerged = "<template>\n  <p>{{ count }}</p>\n</template>\n\n<script setup>\n" +
	"// Injected from ../scripts/Counter.js\nconst count = ref(0)\n\nconst label = 'n'\n</script>\n"

type fixture struct {
	root     string
	loader   *mocks.MockConfigLoader
	reporter *mocks.MockReporter
	logger   *mocks.MockLogger
	app      *app.App
}

func newFixture(t *testing.T, newWatcher ports.WatcherFactory) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		root:     t.TempDir(),
		loader:   mocks.NewMockConfigLoader(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	f.logger.EXPECT().SetDebug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(root string) (domain.Config, error) {
		cfg := domain.DefaultConfig()
		cfg.RootDir = root
		return cfg, nil
	}).AnyTimes()

	f.app = app.New(
		f.loader,
		fsadapter.NewOSFS(),
		fsadapter.NewWalker(),
		fsadapter.NewHasher(),
		f.reporter,
		f.logger,
		newWatcher,
		manifest.Factory,
	)
	return f
}

func (f *fixture) write(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(f.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (f *fixture) opts() app.BuildOptions {
	return app.BuildOptions{Config: app.ConfigOverrides{Root: f.root}}
}

// recordResults collects every reported file result.
func (f *fixture) recordResults() *resultLog {
	log := &resultLog{}
	f.reporter.EXPECT().OnBuildStart(gomock.Any(), gomock.Any()).AnyTimes()
	f.reporter.EXPECT().OnBuildComplete(gomock.Any(), gomock.Any()).AnyTimes()
	f.reporter.EXPECT().OnFileResult(gomock.Any()).Do(log.add).AnyTimes()
	return log
}

type resultLog struct {
	mu      sync.Mutex
	results map[string]domain.FileResult
}

func (l *resultLog) add(res domain.FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.results == nil {
		l.results = map[string]domain.FileResult{}
	}
	l.results[filepath.Base(res.Component)] = res
}

func (l *resultLog) get(name string) domain.FileResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.results[name]
}

func TestApp_Build_MergesComponents(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "src/components/Counter.vue", counterSource)
	f.write(t, "src/components/Plain.vue", "<template><p /></template>\n")
	f.write(t, "src/scripts/Counter.js", "const count = ref(0)")
	results := f.recordResults()

	summary, err := f.app.Build(context.Background(), f.opts())
	require.NoError(t, err)

	assert.Equal(t, domain.BuildSummary{Total: 2, Merged: 1, Unchanged: 1}, summary)

	out := filepath.Join(f.root, domain.DefaultOutDir, "components", "Counter.vue")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, counterMerged, string(data))

	counter := results.get("Counter.vue")
	assert.Equal(t, domain.StatusMerged, counter.Status)
	assert.Equal(t, out, counter.Output)
	assert.Equal(t, filepath.Join(f.root, "src", "scripts", "Counter.js"), counter.Script)

	assert.Equal(t, domain.StatusUnchanged, results.get("Plain.vue").Status)
	assert.NoFileExists(t, filepath.Join(f.root, domain.DefaultOutDir, "components", "Plain.vue"))
}

func TestApp_Build_SecondRunIsUpToDate(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "src/components/Counter.vue", counterSource)
	f.write(t, "src/scripts/Counter.js", "const count = ref(0)")
	f.recordResults()

	first, err := f.app.Build(context.Background(), f.opts())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Merged)

	second, err := f.app.Build(context.Background(), f.opts())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Merged)
	assert.Equal(t, 1, second.UpToDate)
}

func TestApp_Build_DryRunWritesNothing(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "src/components/Counter.vue", counterSource)
	f.write(t, "src/scripts/Counter.js", "const count = ref(0)")
	f.recordResults()

	opts := f.opts()
	opts.DryRun = true
	summary, err := f.app.Build(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, summary.DryRun)
	assert.Equal(t, 1, summary.Merged)
	assert.NoDirExists(t, filepath.Join(f.root, domain.DefaultOutDir))
}

func TestApp_Build_WriteFailureFailsBuild(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "src/components/Counter.vue", counterSource)
	f.write(t, "src/scripts/Counter.js", "const count = ref(0)")
	// A regular file where the output directory should be.
	f.write(t, "blocked", "")
	results := f.recordResults()

	opts := f.opts()
	opts.OutDir = "blocked"
	summary, err := f.app.Build(context.Background(), opts)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
	assert.Contains(t, err.Error(), domain.ErrOutputWriteFailed.Error())
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, domain.StatusFailed, results.get("Counter.vue").Status)
}

func TestApp_Build_SkipsOutputDirectoryAndIgnores(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "src/components/Counter.vue", counterSource)
	f.write(t, "src/out/components/Counter.vue", counterMerged)
	f.write(t, "src/legacy/Old.vue", counterSource)
	f.write(t, "src/scripts/Counter.js", "const count = ref(0)")
	f.recordResults()

	opts := f.opts()
	opts.OutDir = "src/out"
	opts.Ignores = []string{"legacy/**"}
	summary, err := f.app.Build(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
}

func TestApp_Build_MissingSourceDirectory(t *testing.T) {
	f := newFixture(t, nil)
	f.reporter.EXPECT().OnBuildStart(f.root, 0)
	f.reporter.EXPECT().OnBuildComplete(domain.BuildSummary{}, gomock.Any())

	summary, err := f.app.Build(context.Background(), f.opts())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
}

func TestApp_Build_CanceledContext(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "src/components/Counter.vue", counterSource)
	f.recordResults()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.app.Build(ctx, f.opts())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildInterrupted))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestApp_Build_Overrides(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "web/components/Counter.vue", counterSource)
	f.write(t, "packages/shared/Counter.logic.js", "shared()")
	results := f.recordResults()

	opts := f.opts()
	opts.Config.SrcDir = "web"
	opts.Config.Dirs = []string{"@shared"}
	opts.Config.Extensions = []string{".logic.js"}
	opts.Config.Comment = "/* {filename} */"
	opts.Config.Alias = map[string]string{"@shared": "packages/shared"}

	_, err := f.app.Build(context.Background(), opts)
	require.NoError(t, err)

	res := results.get("Counter.vue")
	require.Equal(t, domain.StatusMerged, res.Status)
	data, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/* ../../packages/shared/Counter.logic.js */\nshared()")
}

func TestApp_Build_RecordsOutputsInManifest(t *testing.T) {
	f := newFixture(t, nil)
	component := f.write(t, "src/components/Counter.vue", counterSource)
	script := f.write(t, "src/scripts/Counter.js", "const count = ref(0)")
	f.write(t, "src/components/Plain.vue", "<template />\n")
	f.recordResults()

	_, err := f.app.Build(context.Background(), f.opts())
	require.NoError(t, err)

	m, err := manifest.Open(filepath.Join(f.root, domain.DefaultOutDir, domain.ManifestFileName))
	require.NoError(t, err)
	assert.Equal(t, []string{"components/Counter.vue"}, m.Outputs())

	rec, ok := m.Get("components/Counter.vue")
	require.True(t, ok)
	assert.Equal(t, component, rec.Component)
	assert.Equal(t, script, rec.Script)
	assert.Equal(t, fsadapter.NewHasher().ComputeHash([]byte(counterMerged)), rec.Hash)
}

func TestApp_Build_RemovesStaleOutputs(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "src/components/Counter.vue", counterSource)
	f.write(t, "src/components/nested/Card.vue", "<template></template>\n")
	f.write(t, "src/scripts/Counter.js", "const count = ref(0)")
	card := f.write(t, "src/scripts/Card.js", "card()")
	f.recordResults()

	_, err := f.app.Build(context.Background(), f.opts())
	require.NoError(t, err)
	cardOut := filepath.Join(f.root, domain.DefaultOutDir, "components", "nested", "Card.vue")
	require.FileExists(t, cardOut)

	require.NoError(t, os.Remove(card))

	summary, err := f.app.Build(context.Background(), f.opts())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Unchanged)

	assert.NoFileExists(t, cardOut)
	assert.NoDirExists(t, filepath.Dir(cardOut))
	assert.FileExists(t, filepath.Join(f.root, domain.DefaultOutDir, "components", "Counter.vue"))
}

func TestApp_Build_UnreadableManifestIsIgnored(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "src/components/Counter.vue", counterSource)
	f.write(t, "src/scripts/Counter.js", "const count = ref(0)")
	f.write(t, filepath.Join(domain.DefaultOutDir, domain.ManifestFileName), "{broken")
	f.recordResults()

	summary, err := f.app.Build(context.Background(), f.opts())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Merged)
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "src/components/Counter.vue", counterSource)
	f.write(t, "src/components/deep/Card.vue", "<template></template>\n")
	f.write(t, "src/scripts/Counter.js", "const count = ref(0)")
	f.write(t, "src/scripts/Card.js", "card()")
	f.recordResults()

	_, err := f.app.Build(context.Background(), f.opts())
	require.NoError(t, err)

	removed, err := f.app.Clean(context.Background(), f.opts())

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.NoDirExists(t, filepath.Join(f.root, domain.DefaultOutDir))
	assert.FileExists(t, filepath.Join(f.root, "src", "components", "Counter.vue"))
}

func TestApp_Clean_KeepsUnrecordedFiles(t *testing.T) {
	f := newFixture(t, nil)
	f.write(t, "src/components/Counter.vue", counterSource)
	f.write(t, "src/scripts/Counter.js", "const count = ref(0)")
	notes := f.write(t, filepath.Join(domain.DefaultOutDir, "notes.txt"), "keep me")
	f.recordResults()

	_, err := f.app.Build(context.Background(), f.opts())
	require.NoError(t, err)

	removed, err := f.app.Clean(context.Background(), f.opts())

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.FileExists(t, notes)
	assert.NoFileExists(t, filepath.Join(f.root, domain.DefaultOutDir, domain.ManifestFileName))
}

func TestApp_Clean_NothingBuilt(t *testing.T) {
	f := newFixture(t, nil)

	removed, err := f.app.Clean(context.Background(), f.opts())

	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestApp_LoadConfig(t *testing.T) {
	f := newFixture(t, nil)

	cfg, err := f.app.LoadConfig(app.ConfigOverrides{Root: f.root, Debug: true, NoSameDir: true})
	require.NoError(t, err)

	assert.Equal(t, f.root, cfg.RootDir)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.PreferSameDir)
}

func TestApp_LoadConfig_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.Config{}, domain.ErrConfigParseFailed)

	a := app.New(loader, fsadapter.NewOSFS(), fsadapter.NewWalker(), fsadapter.NewHasher(), nil, log, nil, nil)
	_, err := a.LoadConfig(app.ConfigOverrides{Root: t.TempDir()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestApp_LoadConfig_InvalidOverride(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.app.LoadConfig(app.ConfigOverrides{Root: f.root, Extensions: []string{" "}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidExtension.Error())
}

func TestApp_Resolve(t *testing.T) {
	f := newFixture(t, nil)
	component := f.write(t, "src/components/Counter.vue", counterSource)
	script := f.write(t, "src/logic/Counter.js", "x()")

	got, err := f.app.Resolve(context.Background(), app.ConfigOverrides{Root: f.root}, component)

	require.NoError(t, err)
	assert.Equal(t, script, got)
}

func TestApp_Resolve_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	component := f.write(t, "src/components/Counter.vue", counterSource)

	_, err := f.app.Resolve(context.Background(), app.ConfigOverrides{Root: f.root}, component)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrScriptNotFound))
}

func TestApp_Resolve_NotAComponent(t *testing.T) {
	f := newFixture(t, nil)
	path := f.write(t, "src/components/Counter.ts", "")

	_, err := f.app.Resolve(context.Background(), app.ConfigOverrides{Root: f.root}, path)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotAComponent))
}

func TestApp_TransformFile(t *testing.T) {
	f := newFixture(t, nil)
	component := f.write(t, "src/components/Counter.vue", counterSource)
	f.write(t, "src/scripts/Counter.js", "const count = ref(0)")

	var buf bytes.Buffer
	changed, err := f.app.TransformFile(context.Background(), app.ConfigOverrides{Root: f.root}, component, &buf)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, counterMerged, buf.String())
}

func TestApp_TransformFile_Unchanged(t *testing.T) {
	f := newFixture(t, nil)
	component := f.write(t, "src/components/Counter.vue", counterSource)

	var buf bytes.Buffer
	changed, err := f.app.TransformFile(context.Background(), app.ConfigOverrides{Root: f.root}, component, &buf)

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, counterSource, buf.String())
}

func TestApp_TransformFile_ReadFailure(t *testing.T) {
	f := newFixture(t, nil)

	var buf bytes.Buffer
	_, err := f.app.TransformFile(
		context.Background(), app.ConfigOverrides{Root: f.root}, filepath.Join(f.root, "Missing.vue"), &buf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrComponentReadFailed.Error())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

// fakeWatcher replays events sent on its channel until stopped.
type fakeWatcher struct {
	events   chan ports.WatchEvent
	started  chan string
	stopOnce sync.Once
	startErr error
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		events:  make(chan ports.WatchEvent),
		started: make(chan string, 1),
	}
}

func (w *fakeWatcher) Start(_ context.Context, root string) error {
	if w.startErr != nil {
		return w.startErr
	}
	w.started <- root
	return nil
}

func (w *fakeWatcher) Stop() error {
	w.stopOnce.Do(func() { close(w.events) })
	return nil
}

func (w *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for e := range w.events {
			if !yield(e) {
				return
			}
		}
	}
}

func TestApp_Watch_RebuildsOnChange(t *testing.T) {
	w := newFakeWatcher()
	f := newFixture(t, func() (ports.Watcher, error) { return w, nil })
	f.app.WithDebounceWindow(10 * time.Millisecond)
	f.write(t, "src/components/Counter.vue", counterSource)
	script := f.write(t, "src/scripts/Counter.js", "const count = ref(0)")

	builds := make(chan domain.BuildSummary, 8)
	f.reporter.EXPECT().OnBuildStart(gomock.Any(), gomock.Any()).AnyTimes()
	f.reporter.EXPECT().OnFileResult(gomock.Any()).AnyTimes()
	f.reporter.EXPECT().OnBuildComplete(gomock.Any(), gomock.Any()).
		Do(func(s domain.BuildSummary, _ time.Duration) { builds <- s }).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.app.Watch(ctx, f.opts()) }()

	first := <-builds
	assert.Equal(t, 1, first.Merged)
	assert.Equal(t, f.root, <-w.started)

	require.NoError(t, os.WriteFile(script, []byte("const count = ref(1)"), 0o600))
	// Events inside the output directory do not trigger a rebuild.
	w.events <- ports.WatchEvent{Path: filepath.Join(f.root, domain.DefaultOutDir, "components", "Counter.vue")}
	w.events <- ports.WatchEvent{Path: script, Operation: ports.OpWrite}

	select {
	case second := <-builds:
		assert.Equal(t, 1, second.Merged)
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild after change")
	}

	data, err := os.ReadFile(filepath.Join(f.root, domain.DefaultOutDir, "components", "Counter.vue"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ref(1)")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestApp_Watch_StartFailure(t *testing.T) {
	w := newFakeWatcher()
	w.startErr = errors.New("too many open files")
	f := newFixture(t, func() (ports.Watcher, error) { return w, nil })
	f.recordResults()

	err := f.app.Watch(context.Background(), f.opts())

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrWatcherStartFailed.Error())
	assert.Contains(t, err.Error(), "too many open files")
}

func TestApp_Watch_FactoryFailure(t *testing.T) {
	f := newFixture(t, func() (ports.Watcher, error) { return nil, errors.New("no inotify") })
	f.recordResults()

	err := f.app.Watch(context.Background(), f.opts())

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrWatcherStartFailed.Error())
}
