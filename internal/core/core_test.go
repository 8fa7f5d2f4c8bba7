package core

import (
	"encoding/json"
	"testing"
)

func TestPlayerColors(t *testing.T) {
	tests := []struct {
		player Player
		color  Color
		other  Player
		str    string
	}{
		{PlayerX, ColorDark, PlayerO, "X"},
		{PlayerO, ColorLight, PlayerX, "O"},
		{PlayerNone, ColorNone, PlayerNone, "-"},
	}
	for _, tt := range tests {
		if got := tt.player.Color(); got != tt.color {
			t.Errorf("%v.Color() = %v; want %v", tt.player, got, tt.color)
		}
		if got := tt.player.Other(); got != tt.other {
			t.Errorf("%v.Other() = %v; want %v", tt.player, got, tt.other)
		}
		if got := PlayerFor(tt.color); got != tt.player {
			t.Errorf("PlayerFor(%v) = %v; want %v", tt.color, got, tt.player)
		}
		if got := tt.player.String(); got != tt.str {
			t.Errorf("String() = %q; want %q", got, tt.str)
		}
	}
	if ColorDark.Opposite() != ColorLight || ColorLight.Opposite() != ColorDark {
		t.Error("Opposite does not swap dark and light")
	}
}

func TestParticipantJSON(t *testing.T) {
	p := NewParticipant(PlayerO, PlayerComputer)
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var raw map[string]any
	json.Unmarshal(data, &raw)
	if raw["seat"] != "O" {
		t.Errorf("seat = %v; want \"O\"", raw["seat"])
	}

	var back Participant
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != *p {
		t.Errorf("round trip = %+v; want %+v", back, *p)
	}

	if err := json.Unmarshal([]byte(`{"seat":"Z"}`), &back); err == nil {
		t.Error("Unmarshal accepted seat Z")
	}
}

func TestStates(t *testing.T) {
	if StateOngoing.Finished() || StateWaiting.Finished() {
		t.Error("non-terminal state reported finished")
	}
	if WinState(PlayerX) != StateXWins || WinState(PlayerO) != StateOWins {
		t.Error("WinState mismatch")
	}
	if StateOWins.String() != "o_wins" {
		t.Errorf("String = %q", StateOWins.String())
	}
}
