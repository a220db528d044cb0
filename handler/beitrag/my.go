package beitrag

import (
	"beitrag/db"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// MyPostHandler shows the user's stored post record, if any.
func MyPostHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := i.Member.User.ID

	post, err := db.GetPost(userID)
	if err != nil {
		log.Printf("Error getting post for user %s: %v", userID, err)
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "❌ Beim Abrufen deines Beitrags ist ein Fehler aufgetreten.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	if post == nil {
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Du hast noch keinen Beitrag eingereicht.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	stats, err := db.GetUserStats(userID)
	if err != nil {
		log.Printf("Error getting stats for user %s: %v", userID, err)
	}

	embed := &discordgo.MessageEmbed{
		Title: "📄 Dein letzter Beitrag",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Typ", Value: post.SourceType, Inline: true},
			{Name: "Priorität", Value: post.Priority, Inline: true},
			{Name: "URL", Value: post.URL},
			{Name: "Beschreibung", Value: post.Description},
		},
		Color: 0x00BFFF,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Eingereicht am %s", post.UpdatedAt.Format("02.01.2006 15:04")),
		},
	}
	if stats != nil {
		embed.Footer.Text += fmt.Sprintf(" · insgesamt %d Einreichungen", stats.SubmittedCount)
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}
