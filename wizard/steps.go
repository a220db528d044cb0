package wizard

import (
	"beitrag/model"
	"fmt"
	"strings"
)

// SourceTypes are the selectable source kinds for step 1.
var SourceTypes = []string{"Website", "Blog", "Video", "Podcast"}

// Priorities are the selectable priority levels for step 4.
var Priorities = []string{"Wichtig", "Normal", "Niedrig"}

// Confirmation answers for the final step.
const (
	AnswerYes = "Ja"
	AnswerNo  = "Nein"
)

// step is one entry of the wizard's ordered step table. record writes the
// answer to the current prompt into the draft; a nil record means the answer
// is consumed by the terminal commit/cancel logic instead.
type step struct {
	prompt  func(d *model.Draft) string
	choices []string
	record  func(d *model.Draft, input string)
}

var steps = []step{
	{
		prompt: func(d *model.Draft) string {
			return "**Schritt 1/5** – Welche Art von Quelle möchtest du einreichen?"
		},
		choices: SourceTypes,
		record:  func(d *model.Draft, input string) { d.SourceType = input },
	},
	{
		prompt: func(d *model.Draft) string {
			return "**Schritt 2/5** – Schick mir bitte die URL des Beitrags."
		},
		record: func(d *model.Draft, input string) { d.URL = input },
	},
	{
		prompt: func(d *model.Draft) string {
			return "**Schritt 3/5** – Beschreibe kurz, worum es in dem Beitrag geht."
		},
		record: func(d *model.Draft, input string) { d.Description = input },
	},
	{
		prompt: func(d *model.Draft) string {
			return "**Schritt 4/5** – Wie wichtig ist der Beitrag?"
		},
		choices: Priorities,
		record:  func(d *model.Draft, input string) { d.Priority = input },
	},
	{
		prompt: func(d *model.Draft) string {
			return fmt.Sprintf(
				"**Schritt 5/5** – Passt das so?\n\n%s\n\nMit *Ja* speichern oder mit *Nein* verwerfen.",
				Summary(d),
			)
		},
		choices: []string{AnswerYes, AnswerNo},
	},
}

// Summary renders the collected answers as they appear in the final message.
func Summary(d *model.Draft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Typ *%s*\n", d.SourceType)
	fmt.Fprintf(&b, "**URL:** %s\n", d.URL)
	fmt.Fprintf(&b, "**Beschreibung:** %s\n", d.Description)
	fmt.Fprintf(&b, "Priorität: *%s*", d.Priority)
	return b.String()
}

func committedText(d *model.Draft) string {
	return "✅ Dein Beitrag wurde gespeichert!\n\n" + Summary(d)
}

const cancelledText = "❌ Einreichung abgebrochen. Es wurde nichts gespeichert."
