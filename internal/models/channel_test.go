package models

import (
	"encoding/json"
	"testing"
)

func TestParseChannelCaseInsensitive(t *testing.T) {
	for _, raw := range []string{"TALABAT", "talabat", "Talabat", " talabat "} {
		ch, ok := ParseChannel(raw)
		if !ok {
			t.Fatalf("ParseChannel(%q) failed", raw)
		}
		if ch != ChannelTalabat {
			t.Errorf("ParseChannel(%q) = %v, want Talabat", raw, ch)
		}
	}
}

func TestParseChannelUnknown(t *testing.T) {
	for _, raw := range []string{"", "zomato", "talabat!", "uber eats"} {
		if _, ok := ParseChannel(raw); ok {
			t.Errorf("ParseChannel(%q) should not match", raw)
		}
	}
}

func TestChannelJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(ChannelDeliveroo)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Deliveroo"` {
		t.Fatalf("marshalled as %s", data)
	}

	var ch Channel
	if err := json.Unmarshal(data, &ch); err != nil {
		t.Fatal(err)
	}
	if ch != ChannelDeliveroo {
		t.Errorf("round trip gave %v", ch)
	}
}

func TestChannelLookupTables(t *testing.T) {
	for _, ch := range AllChannels {
		if ch.Color() == "" {
			t.Errorf("%s missing color", ch)
		}
		if ch.Icon() == "" {
			t.Errorf("%s missing icon", ch)
		}
	}
}
