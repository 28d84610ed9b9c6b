package session

import "strings"

// Defaults substituted when a query parameter is absent or empty.
const (
	DefaultLocation              = "La Jolla, CA"
	DefaultDestination           = "Irvine, CA"
	DefaultInitialDesiredService = "Coffee Shops"
)

// Params are the caller-supplied values embedded in the session prompt.
type Params struct {
	Location              string
	Destination           string
	InitialDesiredService string
}

// WithDefaults returns a copy of p where every empty field holds its default.
// An explicitly empty value is treated the same as a missing one.
func (p Params) WithDefaults() Params {
	return Params{
		Location:              orDefault(p.Location, DefaultLocation),
		Destination:           orDefault(p.Destination, DefaultDestination),
		InitialDesiredService: orDefault(p.InitialDesiredService, DefaultInitialDesiredService),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Payload is the request body sent to the realtime sessions endpoint.
type Payload struct {
	Model                   string                  `json:"model"`
	Voice                   string                  `json:"voice"`
	InputAudioTranscription InputAudioTranscription `json:"input_audio_transcription"`
	Instructions            string                  `json:"instructions"`
}

// InputAudioTranscription selects the model used to transcribe user audio.
type InputAudioTranscription struct {
	Model string `json:"model"`
}

// Models identifies the upstream models and voice used for new sessions.
type Models struct {
	Realtime      string
	Voice         string
	Transcription string
}

func (m Models) normalized() Models {
	return Models{
		Realtime:      strings.TrimSpace(m.Realtime),
		Voice:         strings.TrimSpace(m.Voice),
		Transcription: strings.TrimSpace(m.Transcription),
	}
}
