package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   Kind
		wantOK bool
	}{
		{raw: "area", want: KindArea, wantOK: true},
		{raw: "config_entry", want: KindConfigEntry, wantOK: true},
		{raw: " scene ", want: KindScene, wantOK: true},
		{raw: "zone", want: Kind("zone"), wantOK: false},
		{raw: "", want: Kind(""), wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseKind(tc.raw)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestKind_IsTerminal(t *testing.T) {
	terminal := map[Kind]bool{}
	for _, k := range SupportedKinds() {
		terminal[k] = k.IsTerminal()
	}

	assert.Equal(t, map[Kind]bool{
		KindArea:        true,
		KindAutomation:  true,
		KindConfigEntry: true,
		KindDevice:      false,
		KindEntity:      false,
		KindGroup:       true,
		KindScene:       true,
		KindScript:      true,
	}, terminal)
}

func TestSupportedKinds_ReturnsCopy(t *testing.T) {
	kinds := SupportedKinds()
	kinds[0] = Kind("zone")

	assert.Equal(t, KindArea, SupportedKinds()[0])
	assert.Equal(t, "area, automation, config_entry, device, entity, group, scene, script", SupportedKindNames())
}

func TestSplitEntityID(t *testing.T) {
	tests := []struct {
		entityID   string
		wantDomain string
		wantObject string
	}{
		{entityID: "light.kitchen", wantDomain: "light", wantObject: "kitchen"},
		{entityID: "script.wake.up", wantDomain: "script", wantObject: "wake.up"},
		{entityID: "bare", wantDomain: "bare", wantObject: ""},
	}

	for _, tc := range tests {
		domain, object := SplitEntityID(tc.entityID)
		assert.Equal(t, tc.wantDomain, domain, tc.entityID)
		assert.Equal(t, tc.wantObject, object, tc.entityID)
	}
}

func TestNode_String(t *testing.T) {
	assert.Equal(t, "config_entry:abc123", Node{Kind: KindConfigEntry, ID: "abc123"}.String())
}
