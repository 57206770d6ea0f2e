package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"spritegen/assembler"
	"spritegen/command"
	"spritegen/config"
)

// fakeRunner stands in for ffmpeg. It records which task types ran and
// fabricates each command's output file so downstream steps find it.
type fakeRunner struct {
	mu        sync.Mutex
	ran       []command.TaskType
	failTypes map[command.TaskType]bool
}

func (r *fakeRunner) Run(cmd command.Command) error {
	taskType := cmd.GetTaskType()
	r.mu.Lock()
	r.ran = append(r.ran, taskType)
	r.mu.Unlock()
	if r.failTypes[taskType] {
		return errors.New("simulated failure")
	}
	return os.WriteFile(cmd.GetOutputPath(), []byte("frame data"), 0644)
}

func (r *fakeRunner) count(taskType command.TaskType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ran := range r.ran {
		if ran == taskType {
			n++
		}
	}
	return n
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutputDir = t.TempDir()
	cfg.Workers = 4
	return cfg
}

func testPipeline(cfg *config.Config, runner *fakeRunner, duration float64) *Pipeline {
	return New(cfg, zap.NewNop()).
		SetProber(ProberFunc(func(string) (float64, error) { return duration, nil })).
		SetAssembler(assembler.New(runner, cfg.Workers))
}

func TestProcess_ShortVideo(t *testing.T) {
	dir := t.TempDir()
	input := touch(t, dir, "clip.mp4")

	cfg := testConfig(t)
	runner := &fakeRunner{}
	p := testPipeline(cfg, runner, 3.0)

	report, err := p.Process(input)
	require.NoError(t, err)
	require.NotNil(t, report)

	// 3 seconds at a 5 second interval collapses to the single 0.5s sample.
	assert.Equal(t, 1, report.FrameCount)
	assert.Equal(t, "clip", report.Stem())
	assert.Equal(t, 1, runner.count(command.TaskTypeCompose))
	assert.Zero(t, runner.count(command.TaskTypeExtract))

	assert.FileExists(t, filepath.Join(cfg.OutputDir, "clip_sprite.webp"))

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "clip_sprite.vtt"))
	require.NoError(t, err)
	expected := "WEBVTT\n" +
		"\n" +
		"00:00:00.500 --> 00:00:01.500\n" +
		"clip_sprite.webp#xywh=0,0,320,180\n"
	assert.Equal(t, expected, string(data))
}

func TestProcess_LongVideoStreams(t *testing.T) {
	dir := t.TempDir()
	input := touch(t, dir, "feature.mkv")

	cfg := testConfig(t)
	runner := &fakeRunner{}
	p := testPipeline(cfg, runner, 3000.0)

	report, err := p.Process(input)
	require.NoError(t, err)

	assert.Equal(t, 600, report.FrameCount)
	assert.Zero(t, runner.count(command.TaskTypeCompose))
	assert.Equal(t, 600, runner.count(command.TaskTypeExtract))
	assert.Equal(t, 1, runner.count(command.TaskTypeTile))

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "feature_sprite.vtt"))
	require.NoError(t, err)
	assert.Equal(t, 600, strings.Count(string(data), "#xywh="))
	// The 600th cue spans the last interval and closes one second after it.
	assert.Contains(t, string(data), "00:49:55.000 --> 00:49:56.000")
}

func TestProcess_JPEGOutputName(t *testing.T) {
	dir := t.TempDir()
	input := touch(t, dir, "clip.mp4")

	cfg := testConfig(t)
	cfg.Format = "jpeg"
	p := testPipeline(cfg, &fakeRunner{}, 3.0)

	_, err := p.Process(input)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(cfg.OutputDir, "clip_sprite.jpg"))

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "clip_sprite.vtt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "clip_sprite.jpg#xywh=")
}

func TestProcess_ProbeFailure(t *testing.T) {
	dir := t.TempDir()
	input := touch(t, dir, "clip.mp4")

	cfg := testConfig(t)
	p := New(cfg, zap.NewNop()).
		SetProber(ProberFunc(func(string) (float64, error) { return 0, errors.New("probe exploded") })).
		SetAssembler(assembler.New(&fakeRunner{}, 4))

	_, err := p.Process(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe exploded")
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp4")
	broken := touch(t, dir, "b.mp4")
	touch(t, dir, "c.mp4")

	cfg := testConfig(t)
	runner := &fakeRunner{}
	p := New(cfg, zap.NewNop()).
		SetProber(ProberFunc(func(path string) (float64, error) {
			if path == broken {
				return 0, errors.New("corrupt container")
			}
			return 3.0, nil
		})).
		SetAssembler(assembler.New(runner, cfg.Workers))

	results, err := p.Run(dir)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Report)
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Report)
	assert.NoError(t, results[2].Err)

	assert.FileExists(t, filepath.Join(cfg.OutputDir, "a_sprite.webp"))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "b_sprite.webp"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "c_sprite.webp"))
}

func TestRun_StrictModeAborts(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp4")
	broken := touch(t, dir, "b.mp4")
	touch(t, dir, "c.mp4")

	cfg := testConfig(t)
	cfg.StrictMode = true
	p := New(cfg, zap.NewNop()).
		SetProber(ProberFunc(func(path string) (float64, error) {
			if path == broken {
				return 0, errors.New("corrupt container")
			}
			return 3.0, nil
		})).
		SetAssembler(assembler.New(&fakeRunner{}, cfg.Workers))

	results, err := p.Run(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aborting after failure")
	// The third video is never attempted.
	require.Len(t, results, 2)
}

func TestRun_MissingInput(t *testing.T) {
	cfg := testConfig(t)
	p := testPipeline(cfg, &fakeRunner{}, 3.0)

	_, err := p.Run(filepath.Join(t.TempDir(), "nothing"))
	require.Error(t, err)

	var notFound *InputNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
