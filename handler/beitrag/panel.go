package beitrag

import (
	"beitrag/config"
	"beitrag/utils"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

const panelStateFile = "panel_state.json"

func createPanelCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Respond within Discord's 3 second window, then do the real work.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending deferred response: %v", err)
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Panic in panel creation goroutine: %v", r)
				s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
					Content: utils.StringPtr("Beim Erstellen des Panels ist ein interner Fehler aufgetreten."),
				})
			}
		}()

		if i.Member.Permissions&discordgo.PermissionManageServer == 0 {
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr("Du hast keine Berechtigung für diese Aktion."),
			})
			return
		}

		channelID := config.Cfg.BeitragBot.PanelChannelID
		if channelID == "" {
			log.Println("Error: PanelChannelID is not configured")
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr("Konfigurationsfehler: Es ist kein Panel-Kanal gesetzt."),
			})
			return
		}

		message, err := s.ChannelMessageSendComplex(channelID, BuildPanelMessage())
		if err != nil {
			log.Printf("Error sending panel message: %v", err)
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr(fmt.Sprintf("Fehler beim Erstellen des Panels: %v", err)),
			})
			return
		}

		if err := utils.SavePanelState(panelStateFile, channelID, message.ID); err != nil {
			log.Printf("Error saving panel state: %v", err)
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr(fmt.Sprintf("Panel erstellt, aber der Zustand konnte nicht gespeichert werden: %v", err)),
			})
			return
		}

		s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: utils.StringPtr("✅ Das Einreichungs-Panel wurde erstellt!"),
		})
	}()
}

// MessageCreate routes new channel messages: free-text wizard answers are
// consumed as turns, everything else may trigger a panel re-post so the
// panel stays at the bottom of its channel.
func MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore the bot's own messages
	if m.Author.ID == s.State.User.ID {
		return
	}

	if handleWizardText(s, m) {
		return
	}

	panelState, err := utils.LoadPanelState(panelStateFile)
	if err != nil {
		log.Printf("Error loading panel state: %v", err)
		return
	}
	if panelState == nil {
		return
	}
	if m.ChannelID != panelState.ChannelID {
		return
	}

	if err := s.ChannelMessageDelete(panelState.ChannelID, panelState.MessageID); err != nil {
		log.Printf("Error deleting old panel message: %v", err)
	}

	newMessage, err := s.ChannelMessageSendComplex(panelState.ChannelID, BuildPanelMessage())
	if err != nil {
		log.Printf("Error sending new panel message: %v", err)
		return
	}

	if err := utils.SavePanelState(panelStateFile, panelState.ChannelID, newMessage.ID); err != nil {
		log.Printf("Error saving new panel state: %v", err)
	}
}
