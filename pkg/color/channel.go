package color

// Channel names a single adjustable axis of a color. Each channel is owned
// by one space: lightness, chroma, hue, temperature and pressure operate in
// Oklch, saturation in Okhsl, a and b in Oklab, and red, green and blue on
// the 8-bit sRGB components.
type Channel string

const (
	ChannelLightness   Channel = "lightness"
	ChannelChroma      Channel = "chroma"
	ChannelSaturation  Channel = "saturation"
	ChannelHue         Channel = "hue"
	ChannelTemperature Channel = "temperature"
	ChannelPressure    Channel = "pressure"
	ChannelA           Channel = "a"
	ChannelB           Channel = "b"
	ChannelRed         Channel = "red"
	ChannelGreen       Channel = "green"
	ChannelBlue        Channel = "blue"
)

// ValidChannels returns all adjustable channels.
func ValidChannels() []Channel {
	return []Channel{
		ChannelLightness,
		ChannelChroma,
		ChannelSaturation,
		ChannelHue,
		ChannelTemperature,
		ChannelPressure,
		ChannelA,
		ChannelB,
		ChannelRed,
		ChannelGreen,
		ChannelBlue,
	}
}

// IsValidChannel reports whether ch names a known channel.
func IsValidChannel(ch Channel) bool {
	switch ch {
	case ChannelLightness, ChannelChroma, ChannelSaturation, ChannelHue,
		ChannelTemperature, ChannelPressure, ChannelA, ChannelB,
		ChannelRed, ChannelGreen, ChannelBlue:
		return true
	}
	return false
}
