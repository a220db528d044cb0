package beitrag

import (
	"beitrag/db"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// StartWizardHandler begins a new wizard run when the panel button is
// clicked. A run already in progress for the same user is replaced.
func StartWizardHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	reply := engine.Start(i.Member.User.ID, i.ChannelID)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    replyText(reply),
			Components: buildReplyComponents(reply),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error starting wizard for user %s: %v", i.Member.User.ID, err)
	}
}

// WizardChoiceHandler feeds a choice-button click into the wizard as one
// turn. The custom ID carries the run ID so clicks on prompts from an
// abandoned run don't advance a newer one.
func WizardChoiceHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) < 3 {
		return // Invalid custom id
	}
	runID := parts[1]
	choice := parts[2]
	userID := i.Member.User.ID

	currentRun, ok := engine.Run(userID)
	if !ok || currentRun != runID {
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Diese Einreichung ist nicht mehr aktiv. Starte bitte eine neue über das Panel.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	reply, err := engine.Advance(userID, choice)
	if err != nil {
		log.Printf("Error advancing wizard for user %s: %v", userID, err)
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Beim Verarbeiten deiner Auswahl ist ein Fehler aufgetreten. Versuch es bitte später noch einmal.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	if reply.Committed {
		if err := db.IncrementSubmittedCount(userID); err != nil {
			log.Printf("Error incrementing submitted count for user %s: %v", userID, err)
		}
		log.Printf("Wizard run %s committed for user %s", runID, userID)
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    replyText(reply),
			Components: buildReplyComponents(reply),
			Embeds:     []*discordgo.MessageEmbed{},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error updating wizard message for user %s: %v", userID, err)
	}
}

// CancelWizardHandler aborts the clicking user's run without touching the
// durable record.
func CancelWizardHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	reply := engine.Cancel(i.Member.User.ID)

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    reply.Text,
			Components: []discordgo.MessageComponent{},
			Embeds:     []*discordgo.MessageEmbed{},
		},
	})
}

// handleWizardText consumes a plain channel message as a free-text turn when
// the author's run is waiting for one in this channel. Returns true if the
// message was taken as wizard input.
func handleWizardText(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if !engine.AwaitingText(m.Author.ID, m.ChannelID) {
		return false
	}

	reply, err := engine.Advance(m.Author.ID, m.Content)
	if err != nil {
		log.Printf("Error advancing wizard for user %s: %v", m.Author.ID, err)
		return true
	}

	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:    replyText(reply),
		Components: buildReplyComponents(reply),
		Reference:  m.Reference(),
	})
	if err != nil {
		log.Printf("Error sending wizard prompt to channel %s: %v", m.ChannelID, err)
	}
	return true
}
