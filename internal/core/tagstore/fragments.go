package tagstore

// actions are the dynamic pose/activity phrases. Grouped loosely by theme;
// the order is load-bearing for seeded reproducibility, so append only.
var actions = []string{
	// cute eating
	"eating strawberry crepe, two hands holding crepe, puffy cheeks, cream on nose",
	"drinking bubble tea, one hand holding cup, straw in mouth, looking at viewer, cute",
	"eating ice cream, licking, cone in hand, one hand holding cone, summer, sweet",
	"cooking, stirring, eggs, messy kitchen, confused",
	// girly poses
	"peace sign, winking, tilting head, looking at viewer",
	"holding hair, wind blowing, looking up, gentle",
	"finger on lips, shy expression, blushing, looking away, embarrassed",
	"stretching arms up, yawning, sleepy eyes, messy hair, morning",
	"twirling, spinning, skirt flowing",
	// daily life
	"reading book, sitting on bench, focused, glasses, library background",
	"looking at smartphone, scrolling, holding phone with both hands, glowing screen",
	"wearing headphones, listening to music, eyes closed, humming, vibing",
	"writing in notebook, holding pen, thinking, desk, study limit",
	"carrying school bag, walking to school, looking back, waving",
	"adjusting glasses, serious expression, smart, looking at viewer",
	"putting on makeup, holding lipstick, mirror reflection, getting ready",
	// motion
	"running, dynamic pose, rushing, late",
	"jumping, mid-air, happy, arms up, energetic, blue sky",
	"walking, looking back, holding hands (POV), date",
	"reaching out, hand towards viewer, longing, desperate",
	"leaning forward, looking closely, curious, big eyes",
	"turning around, hair flip, surprised, wide eyes, dynamic hair",
	// emotions
	"laughing, hand over mouth, closed eyes, tears of joy",
	"surprised, gasping, hand on chest, wide eyes, mouth open",
	"annoyed, crossing arms, pouting, looking away, tsundere",
	"daydreaming, looking out window, chin in hand, bored, clouds",
	"scared, shivering, holding knees, hiding, wide eyes",
	"determined, clenched fist, serious eyes, intense stare, wind",
	"confused, tilting head, question mark, finger on chin",
	// broken / emotional
	"crying, tears streaming, red eyes, wiping tears, sad, looking down",
	"hugging knees, head down, lonely, empty gaze, vulnerable",
	"looking at phone, waiting, lonely, disappointed, dim lighting",
	"lying down, staring blankly, arm over eyes, exhausted, melancholic",
	"in rain, wet hair, wet clothes, looking up at sky, melancholic",
	// soft / dreamy
	"reaching for falling petals, wind in hair, gentle",
	"holding flower, smelling, looking at viewer, peaceful, delicate",
	"gazing at sunset, profile view, wind, contemplative, serene",
	// cozy / resting
	"sleeping, head on arms, peaceful, drooling slightly, cute",
	"hugging plushie, burying face, oversized hoodie, cozy, warm",
	"holding cat, nuzzling, soft expression, cuddling pet",
	"sitting on chair, legs crossed, relaxed, tea cup",
	"leaning on wall, waiting, cool pose, one leg up",
	"lying on grass, books scattered, looking at sky, summer afternoon",
	// creative / work
	"making pottery, pottery wheel, wet clay, dirty hands, wearing apron, focused expression",
	"coding, sitting at desk, dual monitors, computer, mechanical keyboard, cat, cat on keyboard, glowing screen, programming",
	// bed / relaxing
	"reading in bed, lying down, holding book, bedside lamp, cozy atmosphere, relaxed",
	"holding pillow, hugging pillow, lying on side, on bed, curved body, comfortable, sleepy",
	// pain environments
	"sitting on floor, hugging knees, abandoned warehouse, cluttered room, looking at empty space, The Discarded",
	"sitting in luxury car backseat, looking out window, city lights bokeh, cramped space, restricted posture, The In-Transit",
	"leaning against white wall, facing corner, slumped shoulders, exhaustion, (hollow eyes:1.3), The Wall Protocol",
	"snowing, outdoor campfire, winter gear, shivering, (glassy eyes:1.4), loneliness, The Cold Waiting",
	// deep pain
	"sitting on floor, hiding face in knees, wall with photos, happy memories on wall, messy room, trash can, dirty floor, (crying:1.2), The Bittersweet Wall",
	"sitting at table, small cake, single candle, party hat, dark room, shadows, celebrating alone, (tears:1.2), The Solo Birthday",
	"standing in rain, holding two umbrellas, looking at watch, waiting, wet clothes, disappointed, (lonely:1.3), The Rain Wait",
	"looking at smartphone, dark room, glowing screen, (crying:1.4), tears on screen, message read, The Phone Ghost",
}

// backgrounds are grounded, non-fantasy locations that pair with any action.
var backgrounds = []string{
	// school & outdoor
	"school classroom, wooden desk, blackboard, windows, sunlight, afternoon",
	"school hallway, lockers, polished floor, sunlight rays, anime school",
	"cherry blossom park, pink flower trees, falling petals, park bench, spring path",
	"sunny beach, ocean waves, sky, clouds, summer, horizon",
	"flower garden, blooming flowers, garden fence, nature, soft sunlight",
	// home & bedroom
	"cluttered bedroom, unmade bed, clothes on floor, computer desk, plushies, lived-in feel",
	"cozy bedroom, fairy lights on wall, pastel bedding, night, warm lamp light",
	"modern kitchen, gas stove, refrigerator, kitchen counter, sink, domestic setting",
	"living room, sofa, television, coffee table, sunlight through curtains",
	"bathroom, tiled walls, bathtub, mirror, steam, soft lighting",
	// city & mood
	"rainy city street, reflection in puddles, night, atmospheric",
	"convenience store front, bright lights, night, glass door, shelves",
	"rooftop at sunset, chain link fence, warm sky, city skyline, wind",
	"train station platform, waiting area, empty seats, evening light, nostalgic",
}

var cameraEffects = []string{
	"from above, looking down, depth of field",
	"from below, looking up, dramatic angle",
	"close-up, portrait, bokeh, focus on face",
	"wide shot, full body, distant view",
	"side view, profile, wind, hair flowing",
	"pov, first person view, intimate, close",
}

// Actions returns the action phrase list.
func Actions() []string { return actions }

// Backgrounds returns the background phrase list.
func Backgrounds() []string { return backgrounds }

// CameraEffects returns the camera/lighting phrase list.
func CameraEffects() []string { return cameraEffects }
