package lecture

// Length controls how verbose the generated slide content is. Structure
// stays constant regardless of length so downstream splitting keeps working.
type Length string

const (
	LengthShort      Length = "Short (Revision)"
	LengthDetailed   Length = "Detailed"
	LengthCoursework Length = "Coursework"
)

// LengthByChoice maps a menu choice ("1"/"2"/"3") to a Length.
// Unknown choices fall back to Detailed.
func LengthByChoice(choice string) Length {
	switch choice {
	case "1":
		return LengthShort
	case "3":
		return LengthCoursework
	default:
		return LengthDetailed
	}
}

// Persona is the narrator style plus the prebuilt voice that speaks it.
type Persona struct {
	Name   string
	Prompt string
	Voice  string
}

var personas = map[string]Persona{
	"1": {Name: "Enthusiastic", Prompt: "enthusiastic professor", Voice: "Kore"},
	"2": {Name: "Calm Mentor", Prompt: "calm and clear mentor", Voice: "Aoede"},
	"3": {Name: "Friendly Senior", Prompt: "friendly senior explaining with stories", Voice: "Puck"},
	"4": {Name: "Strict Examiner", Prompt: "strict examiner, focused and concise", Voice: "Charon"},
}

// PersonaByChoice maps a menu choice ("1"-"4") to a Persona, defaulting
// to the enthusiastic professor.
func PersonaByChoice(choice string) Persona {
	if p, ok := personas[choice]; ok {
		return p
	}
	return personas["1"]
}

// Theme selects the slide deck styling (1-4).
type Theme int

const (
	ThemeLightBlue Theme = iota + 1
	ThemeDark
	ThemePastel
	ThemeMonochrome
)

// ThemeByChoice maps a menu choice to a Theme, defaulting to light blue.
func ThemeByChoice(choice string) Theme {
	switch choice {
	case "2":
		return ThemeDark
	case "3":
		return ThemePastel
	case "4":
		return ThemeMonochrome
	default:
		return ThemeLightBlue
	}
}

// Request is the immutable set of inputs for one pipeline run.
type Request struct {
	Topic    string
	Length   Length
	Language string
	Persona  Persona
	Theme    Theme
}
