package watch

import (
	"bufio"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ccm2020/home-assistant/cmd/watch/protocol"
	"github.com/ccm2020/home-assistant/internal/testhelpers"
	"github.com/ccm2020/home-assistant/registry"
	"github.com/ccm2020/home-assistant/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishAndSubscribe(t *testing.T) {
	b := newBroker()
	ch := b.subscribe()
	defer b.unsubscribe(ch)

	published := b.publish(protocol.GraphSnapshot{DOT: "digraph { A -> B; }"})
	assert.Equal(t, int64(1), published.ID)

	select {
	case got := <-ch:
		assert.Equal(t, "digraph { A -> B; }", got.DOT)
		assert.Equal(t, int64(1), got.ID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestBroker_NewSubscriberReceivesLatest(t *testing.T) {
	b := newBroker()
	b.publish(protocol.GraphSnapshot{DOT: "digraph { A; }"})
	b.publish(protocol.GraphSnapshot{DOT: "digraph { X -> Y; }"})

	ch := b.subscribe()
	defer b.unsubscribe(ch)

	select {
	case got := <-ch:
		assert.Equal(t, "digraph { X -> Y; }", got.DOT)
		assert.Equal(t, int64(2), got.ID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for latest graph")
	}
}

func TestBroker_MultipleSubscribers(t *testing.T) {
	b := newBroker()
	ch1 := b.subscribe()
	ch2 := b.subscribe()
	defer b.unsubscribe(ch1)
	defer b.unsubscribe(ch2)

	b.publish(protocol.GraphSnapshot{DOT: "digraph { A; }"})

	for i, ch := range []chan protocol.GraphSnapshot{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, "digraph { A; }", got.DOT)
		case <-time.After(time.Second):
			t.Fatalf("ch%d: timed out", i+1)
		}
	}
}

func TestHandleIndex_ServesHTML(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handleIndex(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "hass-search watch")
	assert.Contains(t, w.Body.String(), protocol.RouteEvents)
}

func TestHandleIndex_UnknownPath(t *testing.T) {
	w := httptest.NewRecorder()
	handleIndex(w, httptest.NewRequest("GET", "/favicon.ico", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSSE_StreamsLatestSnapshot(t *testing.T) {
	b := newBroker()
	b.publish(protocol.GraphSnapshot{Entry: "area:garage", DOT: "digraph {\n  a;\n}\n"})

	srv := httptest.NewServer(newServer(b, 0).Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + protocol.RouteEvents)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	require.Len(t, lines, 3)
	assert.Equal(t, "id: 1", lines[0])
	assert.Equal(t, "event: graph", lines[1])

	var got protocol.GraphSnapshot
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[2], "data: ")), &got))
	assert.Equal(t, "area:garage", got.Entry)
	assert.Equal(t, "digraph {\n  a;\n}\n", got.DOT)
}

func TestRenderGraph(t *testing.T) {
	snapshot, err := registry.Decode(strings.NewReader(testhelpers.LivingRoomSnapshot))
	require.NoError(t, err)
	reg, err := registry.New(snapshot)
	require.NoError(t, err)
	engine := search.NewEngine(search.SourcesFrom(reg))

	got := renderGraph(reg, engine, search.Node{Kind: search.KindDevice, ID: "lamp_device"})
	assert.Empty(t, got.Error)
	assert.Equal(t, "device:lamp_device", got.Entry)
	assert.Equal(t, 5, got.Related)
	assert.Contains(t, got.DOT, `"device:lamp_device" -> "area:living_room";`)

	got = renderGraph(reg, engine, search.Node{Kind: "sensor", ID: "x"})
	assert.Contains(t, got.Error, "unknown item type")
	assert.Empty(t, got.DOT)
}

func TestReloadGraph_ReportsLoadErrors(t *testing.T) {
	path := testhelpers.WriteSnapshot(t, "devices: [\n")

	got := reloadGraph(path, search.Node{Kind: search.KindArea, ID: "a"}, slog.New(slog.DiscardHandler))
	assert.Contains(t, got.Error, "failed to load snapshot")
	assert.Equal(t, "area:a", got.Entry)
}

func TestWatchCommand_RejectsUnknownItemType(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{"sensor", "x"})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, search.ErrInvalidKind))
}
