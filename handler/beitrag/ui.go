package beitrag

import (
	"beitrag/wizard"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// BuildPanelMessage builds the submission panel with its three buttons.
func BuildPanelMessage() *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       "📮 Beitrag einreichen",
		Description: "Du hast etwas Lesenswertes gefunden? Reiche es hier ein!\n\nDer Assistent fragt dich nacheinander nach Quelle, URL, Beschreibung und Priorität – am Ende bestätigst du deine Angaben.",
		Color:       0x5865F2, // Discord Blurple
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Beitrag einreichen",
					Style:    discordgo.SuccessButton,
					CustomID: "start_wizard",
					Emoji:    &discordgo.ComponentEmoji{Name: "📮"},
				},
				discordgo.Button{
					Label:    "Mein Beitrag",
					Style:    discordgo.SecondaryButton,
					CustomID: "my_post",
					Emoji:    &discordgo.ComponentEmoji{Name: "📄"},
				},
				discordgo.Button{
					Label:    "Anleitung",
					Style:    discordgo.SecondaryButton,
					CustomID: "how_to_submit",
					Emoji:    &discordgo.ComponentEmoji{Name: "❓"},
				},
			},
		},
	}

	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
}

// buildReplyComponents renders the buttons for a wizard reply: one button per
// offered choice, plus a cancel button while the run is still open.
func buildReplyComponents(reply *wizard.Reply) []discordgo.MessageComponent {
	if reply.Done {
		return []discordgo.MessageComponent{}
	}

	buttons := make([]discordgo.MessageComponent, 0, len(reply.Choices)+1)
	for _, choice := range reply.Choices {
		style := discordgo.PrimaryButton
		switch choice {
		case wizard.AnswerYes:
			style = discordgo.SuccessButton
		case wizard.AnswerNo:
			style = discordgo.DangerButton
		}
		buttons = append(buttons, discordgo.Button{
			Label:    choice,
			Style:    style,
			CustomID: fmt.Sprintf("wizard_choice:%s:%s", reply.RunID, choice),
		})
	}

	// The confirmation step already carries "Nein"; no extra cancel there.
	if !containsChoice(reply.Choices, wizard.AnswerNo) {
		buttons = append(buttons, discordgo.Button{
			Label:    "Abbrechen",
			Style:    discordgo.DangerButton,
			CustomID: "wizard_cancel",
			Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// replyText renders the reply body; free-text prompts get a hint on how to
// answer since there is no input box to click.
func replyText(reply *wizard.Reply) string {
	if reply.Done || len(reply.Choices) > 0 {
		return reply.Text
	}
	return reply.Text + "\n\n_Schreib deine Antwort einfach als Nachricht in diesen Kanal._"
}

func containsChoice(choices []string, want string) bool {
	for _, choice := range choices {
		if choice == want {
			return true
		}
	}
	return false
}
