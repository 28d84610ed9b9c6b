package session

import "fmt"

const instructionsTemplate = `You are a passenger in a vehicle currently on a roadtrip
who's currently in %s and is heading to %s.
You are currently looking for %s.

Your job is to provide recommendations for the most unique and breath-taking
places to visit along the way. For each recommendation, please include:
- Name of the location
- Detailed description

Focus on hidden gems and memorable stops that would enhance the journey.
Please ensure that you are acting like a passenger such as a close-friend
or relative that joined the trip and loves adventure.
`

// BuildInstructions renders the passenger prompt. Defaults are applied
// before substitution; values are embedded verbatim.
func BuildInstructions(p Params) string {
	p = p.WithDefaults()
	return fmt.Sprintf(instructionsTemplate, p.Location, p.Destination, p.InitialDesiredService)
}

// BuildPayload assembles the outbound session request for p.
func BuildPayload(models Models, p Params) *Payload {
	return &Payload{
		Model: models.Realtime,
		Voice: models.Voice,
		InputAudioTranscription: InputAudioTranscription{
			Model: models.Transcription,
		},
		Instructions: BuildInstructions(p),
	}
}
