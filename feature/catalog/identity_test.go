package catalog_test

import (
	"testing"

	"gamedata-sync/feature/catalog"

	"github.com/stretchr/testify/assert"
)

func TestBaseKey(t *testing.T) {
	tests := []struct {
		gameName string
		want     string
	}{
		{"Component_Ion_Engine_01", "ion_engine"},
		{"Component_Ion_Engine_02", "ion_engine"},
		{"Component_Sensor_Array", "sensor_array"},
		{"Component_Pulse_Cannon_10", "pulse_cannon"},
		// A single segment keeps its digits; there is nothing left to name
		// the family otherwise.
		{"Component_01", "01"},
		// Signed or mixed segments are not variant suffixes.
		{"Component_Engine_-01", "engine_-01"},
		{"Component_Engine_v2", "engine_v2"},
		{"Component_REACTOR_Core_3", "reactor_core"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.BaseKey(tt.gameName), "game name %q", tt.gameName)
	}
}

func TestBaseKeyIdempotent(t *testing.T) {
	for _, gameName := range []string{
		"Component_Ion_Engine_01",
		"Component_Sensor_Array",
		"Component_01",
	} {
		key := catalog.BaseKey(gameName)
		assert.Equal(t, key, catalog.BaseKey(key), "base key %q must survive a second pass", key)
	}
}

func TestFriendlyID(t *testing.T) {
	tests := []struct {
		displayName string
		want        string
		ok          bool
	}{
		{"Pulse Cannon", "pulseCannon", true},
		{"Mark-II Shield", "markIiShield", true},
		{"Ion Engine", "ionEngine", true},
		{"None", "none", true},
		{"sensor", "sensor", true},
		{"Auxiliary  Power   Core", "auxiliaryPowerCore", true},
		{"R2-D2 Unit", "r2D2Unit", true},
		// The leading parenthesis absorbs the capitalization slot, so the
		// letters of "(Mk." come through lowered.
		{"Shield (Mk. 3)", "shieldmk3", true},
		{"", "", false},
		{"---", "", false},
		{"!!!", "", false},
	}

	for _, tt := range tests {
		got, ok := catalog.FriendlyID(tt.displayName)
		assert.Equal(t, tt.ok, ok, "display name %q", tt.displayName)
		assert.Equal(t, tt.want, got, "display name %q", tt.displayName)
	}
}

func TestTitleName(t *testing.T) {
	tests := []struct {
		baseKey string
		want    string
	}{
		{"ion_engine", "Ion Engine"},
		{"sensor_array", "Sensor Array"},
		{"pulse_cannon", "Pulse Cannon"},
		{"reactor", "Reactor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.TitleName(tt.baseKey), "base key %q", tt.baseKey)
	}
}
