package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/gol16/model"
	"github.com/sheikhrachel/gol16/utils"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func newTestGame(t *testing.T, config utils.Config) (*game, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, logs bytes.Buffer
	g, err := initializeGame(config, &out, utils.NewLogger(&logs))
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	return g, &out, &logs
}

func fastConfig(maxGenerations int) utils.Config {
	config := utils.DefaultConfig()
	config.DelayMS = 0
	config.MaxGenerations = maxGenerations
	return config
}

func TestInitializeGame(t *testing.T) {
	g, out, _ := newTestGame(t, utils.DefaultConfig())
	if g.cur != model.DefaultSeed() {
		t.Fatalf("current board is not the default seed\n%s", g.cur.String())
	}
	if g.next != (model.Board{}) {
		t.Fatalf("next board should start empty")
	}
	if g.generation != 0 || out.Len() != 0 {
		t.Fatalf("nothing should be rendered before the first step")
	}
}

func TestInitializeGameRejectsBadConfig(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = "spaceship"
	if _, err := initializeGame(config, &bytes.Buffer{}, utils.NewLogger(&bytes.Buffer{})); err == nil {
		t.Fatalf("unknown seed accepted")
	}

	config = utils.DefaultConfig()
	config.DelayMS = -10
	if _, err := initializeGame(config, &bytes.Buffer{}, utils.NewLogger(&bytes.Buffer{})); err == nil {
		t.Fatalf("negative delay accepted")
	}
}

func TestStepRendersThenEvolves(t *testing.T) {
	g, out, _ := newTestGame(t, fastConfig(0))
	seed := g.cur

	if err := g.step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	if !strings.HasSuffix(out.String(), "Generation: 0\n") {
		t.Fatalf("first frame should show generation 0:\n%s", out.String())
	}
	// frame shows the seed, not the evolved board
	if !strings.Contains(out.String(), ". . . . . . . # . . . . . . . . \n. . . . . . . # # ") {
		t.Fatalf("first frame does not show the seed:\n%s", out.String())
	}

	var want model.Board
	seed.NextGeneration(&want)
	if g.cur != want {
		t.Fatalf("board after step\n%s\nexpected\n%s", g.cur.String(), want.String())
	}
	if g.generation != 1 || g.stats.TotalGenerations != 1 {
		t.Fatalf("generation=%d stats=%d, expected 1", g.generation, g.stats.TotalGenerations)
	}
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	g, out, logs := newTestGame(t, fastConfig(5))
	if err := g.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	frames := strings.Count(out.String(), "\x1b[H\x1b[J")
	if frames != 5 {
		t.Fatalf("rendered %d frames, expected 5", frames)
	}
	for i, want := range []string{"Generation: 0\n", "Generation: 1\n", "Generation: 4\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing frame %d %q", i, want)
		}
	}
	if strings.Contains(out.String(), "Generation: 5\n") {
		t.Errorf("rendered past the generation limit")
	}
	if g.generation != 5 {
		t.Fatalf("generation=%d, expected 5", g.generation)
	}

	want := model.DefaultSeed()
	var next model.Board
	for i := 0; i < 5; i++ {
		want.NextGeneration(&next)
		want.CopyFrom(&next)
	}
	if g.cur != want {
		t.Fatalf("board after 5 generations\n%s\nexpected\n%s", g.cur.String(), want.String())
	}
	if !strings.Contains(logs.String(), "reached generation limit (5)") {
		t.Fatalf("limit not logged:\n%s", logs.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	config := utils.DefaultConfig()
	config.DelayMS = int(time.Hour / time.Millisecond)
	g, out, _ := newTestGame(t, config)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run did not stop after cancel")
	}
	if frames := strings.Count(out.String(), "\x1b[H\x1b[J"); frames != 1 {
		t.Fatalf("rendered %d frames, expected 1", frames)
	}
}

func TestRunReturnsWriteError(t *testing.T) {
	g, err := initializeGame(fastConfig(0), failingWriter{}, utils.NewLogger(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	err = g.run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "stdout closed") {
		t.Fatalf("expected write error, got %v", err)
	}
	if g.generation != 0 {
		t.Fatalf("board advanced despite failed render")
	}
}

func TestObserveLogsTransitionsOnce(t *testing.T) {
	config := fastConfig(4)
	config.Seed = "block"
	g, _, logs := newTestGame(t, config)
	if err := g.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(logs.String(), "board is stable from generation 0"); n != 1 {
		t.Fatalf("stable logged %d times:\n%s", n, logs.String())
	}

	g, _, logs = newTestGame(t, fastConfig(0))
	g.cur.Clear()
	g.cur.Set(3, 3, true)
	for i := 0; i < 3; i++ {
		if err := g.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if n := strings.Count(logs.String(), "all cells dead at generation 1"); n != 1 {
		t.Fatalf("extinction logged %d times:\n%s", n, logs.String())
	}
}

func TestWaitForSignalReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := waitForSignal(ctx); err != nil {
		t.Fatalf("waitForSignal: %v", err)
	}
}
