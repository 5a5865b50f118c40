package mood

// moodLexicon maps common mood synonyms straight to a canonical profile
// name, checked before the semantic pass. A hit counts as a full-
// confidence match.
var moodLexicon = map[string]string{
	// happy
	"joyful": "happy", "cheerful": "happy", "elated": "happy", "blissful": "happy",
	"content": "happy", "hopeful": "happy", "upbeat": "happy", "ecstatic": "happy",
	"joy": "happy",

	// sad
	"melancholy": "sad", "gloomy": "sad", "pensive": "sad", "sorrowful": "sad",
	"reflective": "sad", "heartbroken": "sad", "wistful": "sad", "somber": "sad",
	"sadness": "sad",

	// energetic
	"pumped": "energetic", "motivated": "energetic", "victorious": "energetic",
	"intense": "energetic", "fired": "energetic", "unstoppable": "energetic",
	"rebellious": "energetic", "powerful": "energetic",

	// calm
	"peaceful": "calm", "serene": "calm", "mellow": "calm", "tranquil": "calm",
	"contemplative": "calm", "easygoing": "calm", "soothing": "calm", "meditative": "calm",

	// romantic
	"passionate": "romantic", "loving": "romantic", "affectionate": "romantic",
	"sentimental": "romantic", "dreamy": "romantic", "enamored": "romantic",
	"tender": "romantic", "adoring": "romantic",

	// angry
	"anger": "angry", "furious": "angry", "rage": "angry", "mad": "angry",
	"irritated": "angry", "livid": "angry", "outraged": "angry",

	// fear
	"scared": "fear", "terrified": "fear", "anxious": "fear",
	"worried": "fear", "nervous": "fear", "frightened": "fear",

	// surprise
	"surprised": "surprise", "amazed": "surprise",
	"astonished": "surprise", "shocked": "surprise", "startled": "surprise",

	// disgust
	"disgusted": "disgust", "repulsed": "disgust",
	"revolted": "disgust", "sickened": "disgust",
}
