package model

import "encoding/json"

// Color is a project's accent color, derived server-side from the project
// icon. On the wire it is a single integer packing red, green and blue
// bytes, most significant first.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// ColorFromRGBInt unpacks the wire integer into channels.
func ColorFromRGBInt(n int) Color {
	return Color{
		Red:   uint8(n >> 16 & 0xff),
		Green: uint8(n >> 8 & 0xff),
		Blue:  uint8(n & 0xff),
	}
}

// RGBInt packs the channels back into the wire integer.
func (c Color) RGBInt() int {
	return int(c.Red)<<16 | int(c.Green)<<8 | int(c.Blue)
}

// MarshalJSON encodes the color as its packed RGB integer.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.RGBInt())
}

// UnmarshalJSON decodes a packed RGB integer.
func (c *Color) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = ColorFromRGBInt(n)
	return nil
}
