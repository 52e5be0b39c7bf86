package tagstore

// RedNote policy blocks. The RedNote assembler enforces a fixed
// safe-for-platform character/style/negative policy on top of whatever
// preset the caller picked.

// RedNoteNegBase is the quality negative used when the RedNote preset is
// active (swapped for the preset negative otherwise).
const RedNoteNegBase = "worst quality, low quality, normal quality, lowres, anatomical nonsense, conjoined, bad ai-generated, plastic hair, plastic skin, " +
	"artistic error, bad anatomy, bad hands, missing fingers, extra digit, fewer digits, " +
	"cropped, jpeg artifacts, signature, watermark, username, blurry, artist name, " +
	"text, error, 3d, realistic, photo, real life, bad proportions, muscle, muscular"

// RedNoteNegSafety is always appended under the RedNote preset.
const RedNoteNegSafety = "(large breasts:1.5), (big breasts:1.5), (cleavage:1.4), nsfw, nude, " +
	"(nipples:1.5), (visible nipples:1.4), (areola:1.5), " +
	"(see-through:1.4), (transparent:1.4), (child:1.4), (loli:1.4), " +
	"(rating_explicit:1.3), (rating_questionable:1.3), " +
	"(mascara:1.5), (bandaid:1.5), (bandage:1.5), (messy makeup:1.3)"

// RedNoteStyle carries no character tags so the dynamic layers keep full
// control of the art style. Leading comma is stripped at assembly time.
const RedNoteStyle = ", dreamy atmosphere, ethereal, delicate, 4k, high resolution, ultra-detailed, scenery"

// RedNoteCharacter is the body/clothing enforcer block appended last.
const RedNoteCharacter = "(solo:1.5), (perfect cute face:1.4), (beautiful detailed eyes:1.3), (sparkling eyes:1.3), " +
	"(flat chest:1.2), (small breasts:1.2), (mature:1.2), (skinny:1.3), " +
	"messy hair, big fluffy hair, big fluffy curls, large ribbons, fluffy volume, " +
	"rating_safe"

// RedNoteSafetyShorts is inserted after actions that expose leg positions.
const RedNoteSafetyShorts = "(pretty white lace safety shorts:1.3)"

// MoodPhrase maps a mood level in [0,1] to a fixed expression block.
// Bands are half-open [low, high); the top band is closed at 1.0.
func MoodPhrase(level float64) string {
	switch {
	case level < 0.2:
		return "(slight smile:1.2), (gentle expression:1.1), (obedient:1.1), demure"
	case level < 0.4:
		return "(expressionless:1.3), (neutral face:1.2), (serious:1.2), (looking down:1.1)"
	case level < 0.6:
		return "(stoned face:1.3), (hollow gaze:1.1), (dissociation:1.1)"
	case level < 0.8:
		return "(annoyed expression:1.3), (glaring:1.2), (displeased:1.2)"
	default:
		return "(stubborn:1.5), (pouting:1.4), (grumpy:1.4), (angry:1.2), (looking away:1.1)"
	}
}

// Natural-language templates for models that prefer sentences over tag soup.
const (
	NaturalPrefix      = "A high-quality anime illustration of"
	NaturalStylePrefix = "The art style is"
)

// NaturalConnector returns the lead-in phrase gluing a random fragment into
// a sentence for the given dimension (action, background, camera, mood).
func NaturalConnector(dimension string) string {
	switch dimension {
	case "action":
		return "She is currently"
	case "background":
		return "The scene takes place in"
	case "camera":
		return "The image is captured"
	case "mood":
		return "Her expression is"
	default:
		return ""
	}
}
