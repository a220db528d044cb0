package beitrag

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

const guideContent = `### Schön, dass du etwas einreichen möchtest! So funktioniert es:

## Schritt für Schritt
1. **Quelle wählen** – Website, Blog, Video oder Podcast
2. **URL schicken** – einfach als Nachricht in den Kanal schreiben
3. **Beschreibung schicken** – worum geht es, warum ist es lesenswert?
4. **Priorität wählen** – Wichtig, Normal oder Niedrig
5. **Bestätigen** – mit *Ja* wird dein Beitrag gespeichert, mit *Nein* verworfen

## Gut zu wissen
- Du kannst jederzeit über **Abbrechen** aussteigen, dann wird nichts gespeichert
- Eine neue Einreichung ersetzt deinen bisherigen Beitrag
- Über **Mein Beitrag** siehst du, was aktuell gespeichert ist

Viel Spaß beim Teilen!`

// HowToSubmitHandler shows the submission guide.
func HowToSubmitHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title:       "Beitrag-Assistent · Anleitung",
		Description: guideContent,
		Color:       0x5865F2, // Discord Blurple
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending how-to-submit embed: %v", err)
	}
}
