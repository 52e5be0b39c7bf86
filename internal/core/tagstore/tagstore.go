// Package tagstore holds the fixed tag vocabulary used by the prompt
// assemblers: quality/negative presets, action/background/camera phrase
// lists, RedNote policy blocks, and the natural-language connectors.
// The built-in data is static; the only mutation point is ApplyOverlay,
// which registers user-defined presets once at startup.
package tagstore

// QualityTags is the core positive quality block shared by every preset.
const QualityTags = "masterpiece, best quality, very aesthetic, absurdres, newest, sensitive, " +
	"highres, complex background, best anatomy, 8k"

// StandardNegative is the base negative block shared by every preset.
const StandardNegative = "worst quality, low quality, normal quality, lowres, anatomical nonsense, " +
	"artistic error, bad anatomy, bad hands, missing fingers, extra fingers, extra digit, fewer digits, " +
	"cropped, jpeg artifacts, signature, watermark, username, blurry, artist name, " +
	"text, error, 3d, realistic, photo, real life, bad proportions, muscle, muscular"

// DefaultSuffix and DefaultNegative are the fallbacks for unknown preset keys.
const (
	DefaultSuffix   = QualityTags
	DefaultNegative = StandardNegative
)

// Preset is a named positive/negative quality-tag pair.
type Preset struct {
	Positive string
	Negative string
}

var presets = map[string]Preset{
	"none":     {Positive: "", Negative: ""},
	"standard": {Positive: QualityTags, Negative: StandardNegative + ", simple background"},
	"dynamic": {
		Positive: QualityTags + ", dynamic angle, wind, motion blur, dramatic pose, foreshortening",
		Negative: StandardNegative + ", static, standing still, boring, simple background",
	},
	"atmospheric": {
		Positive: QualityTags + ", cinematic lighting, Tyndall effect, dramatic shadows, 8k, masterpiece, ultra-detailed textures",
		Negative: StandardNegative + ", flat color, harsh lighting, simple background",
	},
	"flat": {
		Positive: QualityTags + ", (vibrant colors:1.2), flat color, vector, bold lines, simple background, colorful, white background",
		Negative: StandardNegative + ", 3d, realistic lighting, gradient, photorealistic, shadow, complex background",
	},
	"dreamy": {
		Positive: QualityTags + ", dreaming aesthetic, ethereal glow, sparkling stars, floating petals, soft pastel lighting",
		Negative: StandardNegative + ", harsh lighting, horror, technology, modern",
	},
	"gothic": {
		Positive: QualityTags + ", dark theme, gothic, high contrast, chiaroscuro, mysterious, shadows",
		Negative: StandardNegative + ", bright, pastel, cheerful, sunshine, simple background",
	},
	"retro": {
		Positive: QualityTags + ", 90s retro anime style, lo-fi aesthetic, grainy texture, muted colors, nostalgic gloom",
		Negative: StandardNegative + ", 3d, realistic, modern, 4k, crisp, sharp focus",
	},
}

// presetOrder fixes the enumeration order for node descriptors and CLI help.
var presetOrder = []string{"none", "standard", "dynamic", "atmospheric", "flat", "dreamy", "gothic", "retro"}

// LookupPreset returns the preset for name. Unknown names fall back to the
// default suffix/negative pair so legacy workflows keep producing output.
func LookupPreset(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	return Preset{Positive: DefaultSuffix, Negative: DefaultNegative}
}

// HasPreset reports whether name is a defined preset key.
func HasPreset(name string) bool {
	_, ok := presets[name]
	return ok
}

// PresetNames returns the preset keys in declaration order.
func PresetNames() []string {
	out := make([]string, len(presetOrder))
	copy(out, presetOrder)
	return out
}
