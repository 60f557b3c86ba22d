package logging_test

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/logging"
)

var linePrefix = regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} `)

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, nil))

	log.Info("street map loaded", slog.Int("nodes", 6), slog.String("file", "campus map.osm"))

	line := buf.String()
	require.True(t, linePrefix.MatchString(line), line)
	assert.True(t, strings.HasSuffix(line, "INFO street map loaded nodes=6 file=\"campus map.osm\"\n"), line)
}

func TestHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("hidden")
	log.Debug("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN shown")
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, nil)).
		With("component", "server").
		WithGroup("req").
		With("id", 7)

	log.Info("done", slog.Group("solve", slog.String("outcome", "SOLVED")), slog.Int("status", 200))

	assert.Contains(t, buf.String(), "INFO done component=server req.id=7 req.solve.outcome=SOLVED req.status=200\n")
}

func TestHandler_ConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, nil))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			log.Info("tick", slog.Int("i", i))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 20)
	for _, l := range lines {
		assert.Regexp(t, `INFO tick i=\d+$`, l)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		" Warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)

	_, err = logging.New(&bytes.Buffer{}, "loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}
