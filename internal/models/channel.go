package models

import (
	"encoding/json"
	"strings"
)

// Channel identifies one of the delivery platforms tracked by the dashboard.
type Channel int

const (
	ChannelTalabat Channel = iota
	ChannelDeliveroo
	ChannelCareem
	ChannelNoon
	ChannelKeeta
)

// AllChannels lists every known channel in display order. Aggregations
// iterate this slice so that every channel is represented even with zero
// activity.
var AllChannels = []Channel{
	ChannelTalabat,
	ChannelDeliveroo,
	ChannelCareem,
	ChannelNoon,
	ChannelKeeta,
}

var channelNames = map[Channel]string{
	ChannelTalabat:   "Talabat",
	ChannelDeliveroo: "Deliveroo",
	ChannelCareem:    "Careem",
	ChannelNoon:      "Noon",
	ChannelKeeta:     "Keeta",
}

var channelLookup = map[string]Channel{
	"talabat":   ChannelTalabat,
	"deliveroo": ChannelDeliveroo,
	"careem":    ChannelCareem,
	"noon":      ChannelNoon,
	"keeta":     ChannelKeeta,
}

// ParseChannel maps a free-text channel label to its canonical Channel.
// Matching is case-insensitive but otherwise exact; anything unrecognized
// (including the empty string) returns false and the caller drops the row.
func ParseChannel(raw string) (Channel, bool) {
	ch, ok := channelLookup[strings.ToLower(strings.TrimSpace(raw))]
	return ch, ok
}

func (c Channel) String() string {
	if name, ok := channelNames[c]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText lets Channel serialize by display name both as a JSON value
// and as a JSON map key (market-share maps are keyed by Channel).
func (c Channel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Channel) UnmarshalText(data []byte) error {
	if ch, ok := ParseChannel(string(data)); ok {
		*c = ch
	}
	return nil
}

func (c Channel) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Channel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if ch, ok := ParseChannel(s); ok {
		*c = ch
	}
	return nil
}

var channelColors = map[Channel]string{
	ChannelTalabat:   "#FF5A00",
	ChannelDeliveroo: "#00CCBC",
	ChannelCareem:    "#4BB543",
	ChannelNoon:      "#FEEE00",
	ChannelKeeta:     "#FFD300",
}

var channelIcons = map[Channel]string{
	ChannelTalabat:   "talabat.svg",
	ChannelDeliveroo: "deliveroo.svg",
	ChannelCareem:    "careem.svg",
	ChannelNoon:      "noon.svg",
	ChannelKeeta:     "keeta.svg",
}

// Color returns the brand hex color used by chart renderers.
func (c Channel) Color() string {
	return channelColors[c]
}

// Icon returns the asset filename for the channel logo.
func (c Channel) Icon() string {
	return channelIcons[c]
}
